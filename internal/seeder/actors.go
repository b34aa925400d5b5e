package seeder

import (
	"context"
	"fmt"
	"strings"

	"github.com/osrh-labs/rideseed/internal/schema"
)

// Actor generation. Names follow the {role}{index} scheme so a seeded
// database is easy to eyeball; credentials are placeholders, never real
// hashes.

func (s *Seeder) seedAdmins(ctx context.Context) error {
	for i := 0; i < s.cfg.Admins; i++ {
		id := s.gen.UUID()
		if err := s.insert(ctx, schema.TableAdmins,
			[]string{"id", "username", "password_hash"},
			id, fmt.Sprintf("admin%d", i+1), "admin-hash"); err != nil {
			return err
		}
		s.adminIDs = append(s.adminIDs, id)
	}
	return nil
}

func (s *Seeder) seedOperators(ctx context.Context) error {
	if len(s.adminIDs) == 0 {
		return fmt.Errorf("no admins generated to approve operators")
	}
	for i := 0; i < s.cfg.Operators; i++ {
		id := s.gen.UUID()
		if err := s.insert(ctx, schema.TableOperators,
			[]string{"id", "email", "username", "password_hash", "approved_by"},
			id,
			fmt.Sprintf("operator%d@example.com", i+1),
			fmt.Sprintf("operator%d", i+1),
			"operator-hash",
			pick(s.gen, s.adminIDs)); err != nil {
			return err
		}
		s.operatorIDs = append(s.operatorIDs, id)
	}
	return nil
}

func (s *Seeder) seedInspectors(ctx context.Context) error {
	for i := 0; i < s.cfg.Inspectors; i++ {
		id := s.gen.UUID()
		if err := s.insert(ctx, schema.TableInspectors,
			[]string{"id", "email", "username", "password_hash"},
			id,
			fmt.Sprintf("inspector%d@example.com", i+1),
			fmt.Sprintf("inspector%d", i+1),
			"inspector-hash"); err != nil {
			return err
		}
		s.inspectorIDs = append(s.inspectorIDs, id)
	}
	return nil
}

// seedCompanies creates each company's Party first, then the company, then
// its representatives nested inside the company loop.
func (s *Seeder) seedCompanies(ctx context.Context) error {
	for i := 0; i < s.cfg.Companies; i++ {
		partyID := s.gen.UUID()
		if err := s.insert(ctx, schema.TableParties,
			[]string{"id", "party_type", "created_at"},
			partyID, "C", s.now); err != nil {
			return err
		}

		companyID := s.gen.UUID()
		if err := s.insert(ctx, schema.TableCompanies,
			[]string{"id", "name", "party_id"},
			companyID, fmt.Sprintf("Company %d", i+1), partyID); err != nil {
			return err
		}
		s.companyIDs = append(s.companyIDs, companyID)
		s.companyParties = append(s.companyParties, partyID)

		for r := 0; r < s.cfg.RepsPerCompany; r++ {
			email := fmt.Sprintf("repr%d-%d@example.com", i+1, r+1)
			if err := s.insert(ctx, schema.TableCompanyRepresentatives,
				[]string{"id", "company_id", "email", "username", "password_hash"},
				s.gen.UUID(), companyID, email, strings.Split(email, "@")[0], "repr-hash"); err != nil {
				return err
			}
		}
	}
	return nil
}
