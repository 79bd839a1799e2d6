// Package views implements safe dispatch to a closed set of read-only
// database views. Identifiers cannot be passed as bind parameters, so the
// only sound defense against injection through the dynamic view name is an
// exact-match allow-list resolved before any SQL text exists. The untrusted
// path segment is used solely as a map key; the statement executed for a
// matched name is a template pre-built from the literal list below.
package views

import "fmt"

// MaxRows caps the result size of every view query.
const MaxRows = 100

// AllowedViews is the closed set of view names reachable through the
// /api/views endpoint. Matching is exact and case-sensitive.
var AllowedViews = []string{
	"vw_student_full_profile",
	"vw_coach_student_overview",
	"vw_health_risk_alerts",
	"vw_upcoming_appointments",
	"vw_recent_fitness_activity",
	"vw_student_goal_progress",
	"vw_nurse_dashboard",
}

// statements maps each allowed view name to its pre-built query.
var statements = make(map[string]string, len(AllowedViews))

func init() {
	for _, name := range AllowedViews {
		statements[name] = fmt.Sprintf("SELECT * FROM %s LIMIT %d", name, MaxRows)
	}
}

// Resolve maps an untrusted view name to its pre-built statement.
// Unknown names return ok=false and no statement.
func Resolve(name string) (stmt string, ok bool) {
	stmt, ok = statements[name]
	return stmt, ok
}
