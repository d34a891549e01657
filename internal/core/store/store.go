// Package store persists validation reports and reads them back for the
// report API and historical consumers.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/solenne/datawarden/internal/core/db"
	"github.com/solenne/datawarden/internal/engine"
	"github.com/solenne/datawarden/internal/rules"
	"github.com/solenne/datawarden/internal/types"
)

// Store reads and writes validation reports.
// Writes run in a transaction so a report and its rule results land
// together; reads go through the shared named-query layer.
type Store struct {
	db *sqlx.DB
	q  *db.Queries
}

// New builds a store over an open database connection.
func New(database *sqlx.DB) (*Store, error) {
	if database == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	queries, err := db.LoadQueries(database)
	if err != nil {
		return nil, fmt.Errorf("failed to load queries: %w", err)
	}
	return &Store{db: database, q: queries}, nil
}

// reportRow maps the validation_reports table.
type reportRow struct {
	ReportID     string    `db:"report_id"`
	DatasetID    string    `db:"dataset_id"`
	Status       string    `db:"status"`
	TotalRules   int       `db:"total_rules"`
	PassedRules  int       `db:"passed_rules"`
	FailedRules  int       `db:"failed_rules"`
	OverallScore float64   `db:"overall_score"`
	ValidatedAt  time.Time `db:"validated_at"`
}

// ruleResultRow maps the rule_results table. Details are stored as a JSON
// array so the per-column diagnostics survive round-trips unchanged.
type ruleResultRow struct {
	ReportID string `db:"report_id"`
	Position int    `db:"position"`
	RuleName string `db:"rule_name"`
	RuleType string `db:"rule_type"`
	Severity string `db:"severity"`
	Passed   bool   `db:"passed"`
	Details  []byte `db:"details"`
}

// SaveReport persists one table report with its rule results.
func (s *Store) SaveReport(ctx context.Context, report *engine.TableReport) error {
	if report == nil {
		return fmt.Errorf("report cannot be nil")
	}

	insertReport, err := s.q.Raw("insert-report")
	if err != nil {
		return err
	}
	insertResult, err := s.q.Raw("insert-rule-result")
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx, tx.Rebind(insertReport),
		string(report.ReportID),
		report.DatasetID,
		string(report.Status),
		report.TotalRules,
		report.PassedRules,
		report.FailedRules,
		report.OverallScore,
		report.ValidatedAt.UTC(),
		now,
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert report %s: %w", report.ReportID, err)
	}

	for i, res := range report.RuleResults {
		details, err := json.Marshal(res.Details)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to marshal details for rule %q: %w", res.RuleName, err)
		}
		// String, not []byte: pq would bind []byte as bytea, which JSONB
		// columns reject.
		_, err = tx.ExecContext(ctx, tx.Rebind(insertResult),
			string(report.ReportID),
			i,
			res.RuleName,
			string(res.RuleType),
			string(res.Severity),
			res.Passed,
			string(details),
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert rule result %q: %w", res.RuleName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit report %s: %w", report.ReportID, err)
	}
	return nil
}

// SaveSummary persists every table report in a summary, in input order.
func (s *Store) SaveSummary(ctx context.Context, summary *engine.Summary) error {
	for _, id := range summary.Order {
		if err := s.SaveReport(ctx, summary.TableResults[id]); err != nil {
			return err
		}
	}
	return nil
}

// GetReport loads one report and its rule results.
// Returns types.ErrReportNotFound for unknown ids.
func (s *Store) GetReport(ctx context.Context, id types.ReportID) (*engine.TableReport, error) {
	var row reportRow
	err := s.q.Get(ctx, "get-report", &row, string(id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("report %s: %w", id, types.ErrReportNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load report %s: %w", id, err)
	}

	var resultRows []ruleResultRow
	if err := s.q.Select(ctx, "list-rule-results", &resultRows, string(id)); err != nil {
		return nil, fmt.Errorf("failed to load rule results for %s: %w", id, err)
	}

	report := rowToReport(row)
	report.RuleResults = make([]rules.Result, len(resultRows))
	for i, rr := range resultRows {
		var details []rules.Detail
		if err := json.Unmarshal(rr.Details, &details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal details for rule %q: %w", rr.RuleName, err)
		}
		report.RuleResults[i] = rules.Result{
			RuleName: rr.RuleName,
			RuleType: types.RuleType(rr.RuleType),
			Severity: types.Severity(rr.Severity),
			Passed:   rr.Passed,
			Details:  details,
		}
	}

	return report, nil
}

// ListReports returns the most recent reports, newest first, without their
// rule results. Pass a dataset id to filter, or empty for all datasets.
func (s *Store) ListReports(ctx context.Context, datasetID string, limit int) ([]*engine.TableReport, error) {
	var rows []reportRow
	var err error
	if datasetID == "" {
		err = s.q.Select(ctx, "list-reports", &rows, limit)
	} else {
		err = s.q.Select(ctx, "list-reports-for-dataset", &rows, datasetID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	reports := make([]*engine.TableReport, len(rows))
	for i, row := range rows {
		reports[i] = rowToReport(row)
	}
	return reports, nil
}

// rowToReport converts a report row to its domain shape, rule results excluded.
func rowToReport(row reportRow) *engine.TableReport {
	return &engine.TableReport{
		ReportID:     types.ReportID(row.ReportID),
		DatasetID:    row.DatasetID,
		Status:       types.ReportStatus(row.Status),
		TotalRules:   row.TotalRules,
		PassedRules:  row.PassedRules,
		FailedRules:  row.FailedRules,
		OverallScore: row.OverallScore,
		ValidatedAt:  row.ValidatedAt,
	}
}
