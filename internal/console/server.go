package console

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/osrh-labs/rideseed/internal/config"
	"github.com/osrh-labs/rideseed/internal/database"
)

// Server hosts the read-only SQL console.
type Server struct {
	app     *fiber.App
	adapter *database.Adapter
	port    int
}

func NewServer(cfg *config.Config) (*Server, error) {
	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, err
	}

	adapter, err := database.OpenTimeout(cfg.Database.Provider, dbURL,
		time.Duration(cfg.Console.ConnectTimeout)*time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	service := NewService(adapter, adapter.Dialect(), cfg.Console.RowCap)

	return &Server{
		app:     newApp(service),
		adapter: adapter,
		port:    cfg.Console.Port,
	}, nil
}

func newApp(service *Service) *fiber.App {
	engine := html.NewFileSystem(http.FS(TemplatesFS), ".html")
	app := fiber.New(fiber.Config{Views: engine})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("templates/console", fiber.Map{})
	})

	app.Post("/", func(c *fiber.Ctx) error {
		sql := c.FormValue("sql")

		result, err := service.Execute(c.Context(), sql)
		if err != nil {
			return c.Render("templates/console", fiber.Map{
				"SQL":   sql,
				"Error": err.Error(),
			})
		}
		return c.Render("templates/console", fiber.Map{
			"SQL":    sql,
			"Result": result,
		})
	})

	return app
}

func (s *Server) Start() error {
	fmt.Printf("🚀 SQL console starting on http://localhost:%d\n", s.port)
	return s.app.Listen(fmt.Sprintf(":%d", s.port))
}

func (s *Server) Close() error {
	return s.adapter.Close()
}
