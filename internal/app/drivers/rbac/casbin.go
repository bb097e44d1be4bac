package rbac

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"log"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

//go:embed rbac_model.conf
var rbacModel string

//go:embed rbac_policy.csv
var rbacPolicy string

// NewEnforcer builds the role enforcer from the embedded model and policy.
// Paths in the policy are relative to the versioned API root.
func NewEnforcer() *casbin.Enforcer {
	enforcer, err := newEnforcer(rbacModel, rbacPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize casbin enforcer: %s", err.Error())
	}
	log.Println("Successfully loaded RBAC policy")
	return enforcer
}

func newEnforcer(modelText, policyText string) (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("parse rbac model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}

	rules, err := parsePolicy(policyText)
	if err != nil {
		return nil, err
	}
	if len(rules) > 0 {
		if _, err := enforcer.AddPolicies(rules); err != nil {
			return nil, fmt.Errorf("load rbac policy: %w", err)
		}
	}
	return enforcer, nil
}

func parsePolicy(policyText string) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(policyText))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse rbac policy: %w", err)
	}

	var rules [][]string
	for _, record := range records {
		if len(record) != 4 || strings.TrimSpace(record[0]) != "p" {
			continue
		}
		rules = append(rules, []string{
			strings.TrimSpace(record[1]),
			strings.TrimSpace(record[2]),
			strings.TrimSpace(record[3]),
		})
	}
	return rules, nil
}
