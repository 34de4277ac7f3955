// Package filter provides expression-based filtering of flight plan search
// results, so CLI users can narrow listings client-side, for example:
//
//	Distance > 1000 && hasTag("generated")
//	FromICAO == "EHAM" && daysSince(CreatedAt) < 30
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/phkdx/flightplandb-go/flightplandb"
)

// PlanFilter is a compiled filter expression.
type PlanFilter struct {
	program *vm.Program
	source  string
}

// helpers available inside every expression
func helperEnv() map[string]any {
	return map[string]any{
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse("2006-01-02", dateStr)
			return t
		},
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
		"now":   time.Now,
	}
}

// Compile compiles a filter expression. The expression sees one flight plan
// at a time through flattened fields (FromICAO, ToICAO, Distance, Waypoints,
// Likes, Downloads, Popularity, FlightNumber, Username, Tags, CreatedAt and
// friends); absent optional fields appear as zero values.
func Compile(expression string) (*PlanFilter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helperEnv()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &PlanFilter{program: program, source: expression}, nil
}

// String returns the original expression.
func (f *PlanFilter) String() string {
	return f.source
}

// Match evaluates the filter against one plan.
func (f *PlanFilter) Match(plan flightplandb.Plan) (bool, error) {
	env := helperEnv()
	env["ID"] = plan.ID
	env["FromICAO"] = stringValue(plan.FromICAO)
	env["ToICAO"] = stringValue(plan.ToICAO)
	env["FromName"] = stringValue(plan.FromName)
	env["ToName"] = stringValue(plan.ToName)
	env["FlightNumber"] = stringValue(plan.FlightNumber)
	env["Notes"] = stringValue(plan.Notes)
	env["Distance"] = floatValue(plan.Distance)
	env["MaxAltitude"] = floatValue(plan.MaxAltitude)
	env["Waypoints"] = intValue(plan.Waypoints)
	env["Likes"] = intValue(plan.Likes)
	env["Downloads"] = intValue(plan.Downloads)
	env["Popularity"] = intValue(plan.Popularity)
	env["Tags"] = plan.Tags

	if plan.User != nil {
		env["Username"] = plan.User.Username
	} else {
		env["Username"] = ""
	}
	if plan.CreatedAt != nil {
		env["CreatedAt"] = *plan.CreatedAt
	} else {
		env["CreatedAt"] = time.Time{}
	}

	env["hasTag"] = func(tag string) bool {
		for _, t := range plan.Tags {
			if strings.EqualFold(t, tag) {
				return true
			}
		}
		return false
	}

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression must evaluate to a boolean, got %T", result)
	}
	return matched, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatValue(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func intValue(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
