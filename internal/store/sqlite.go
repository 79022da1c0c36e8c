package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/calegray/facade/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on an embedded SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at dsn and runs migrations.
// Use ":memory:" for tests.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Upserts for the same natural key must serialize; a single connection
	// avoids SQLITE_BUSY under concurrent syncs.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS properties (
		id TEXT PRIMARY KEY,
		jurisdiction TEXT NOT NULL,
		address TEXT NOT NULL,
		building_id TEXT NOT NULL DEFAULT '',
		parcel_id TEXT NOT NULL DEFAULT '',
		borough TEXT NOT NULL DEFAULT '',
		last_synced_at TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS records (
		property_id TEXT NOT NULL,
		jurisdiction TEXT NOT NULL,
		dataset TEXT NOT NULL,
		kind TEXT NOT NULL,
		natural_key TEXT NOT NULL,
		issued_at TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		severity_class TEXT NOT NULL DEFAULT '',
		device_id TEXT NOT NULL DEFAULT '',
		inspection_result TEXT NOT NULL DEFAULT '',
		work_type TEXT NOT NULL DEFAULT '',
		completed_at TEXT NOT NULL DEFAULT '',
		raw JSON,
		UNIQUE (dataset, jurisdiction, natural_key)
	);
	CREATE INDEX IF NOT EXISTS idx_records_property ON records (property_id);
	CREATE TABLE IF NOT EXISTS summaries (
		property_id TEXT PRIMARY KEY,
		score INTEGER NOT NULL,
		tier TEXT NOT NULL,
		total_records INTEGER NOT NULL,
		open_records INTEGER NOT NULL,
		by_dataset JSON,
		by_category JSON,
		equipment_issues INTEGER NOT NULL,
		analyzed_at TEXT NOT NULL
	);`
	_, err := s.db.ExecContext(context.Background(), query)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) SaveProperty(ctx context.Context, p model.Property) error {
	query := `INSERT INTO properties (id, jurisdiction, address, building_id, parcel_id, borough, last_synced_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE SET
		jurisdiction = excluded.jurisdiction,
		address = excluded.address,
		building_id = excluded.building_id,
		parcel_id = excluded.parcel_id,
		borough = excluded.borough,
		last_synced_at = excluded.last_synced_at`
	_, err := s.db.ExecContext(ctx, query,
		p.ID, string(p.Jurisdiction), p.Address, p.BuildingID, p.ParcelID, p.Borough, encodeTime(p.LastSyncedAt))
	if err != nil {
		return fmt.Errorf("save property: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Property(ctx context.Context, id string) (model.Property, error) {
	query := `SELECT id, jurisdiction, address, building_id, parcel_id, borough, last_synced_at
	FROM properties WHERE id = ?`
	var p model.Property
	var jurisdiction, lastSynced string
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &jurisdiction, &p.Address, &p.BuildingID, &p.ParcelID, &p.Borough, &lastSynced)
	if err == sql.ErrNoRows {
		return model.Property{}, ErrNotFound
	}
	if err != nil {
		return model.Property{}, fmt.Errorf("get property: %w", err)
	}
	p.Jurisdiction = model.Jurisdiction(jurisdiction)
	p.LastSyncedAt = decodeTime(lastSynced)
	return p, nil
}

func (s *SQLiteStore) UpsertRecord(ctx context.Context, rec model.NormalizedRecord) (bool, error) {
	// The existence probe and the upsert run in one transaction so the
	// created/updated answer cannot race another writer.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("upsert record: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM records WHERE dataset = ? AND jurisdiction = ? AND natural_key = ?`,
		string(rec.Dataset), string(rec.Jurisdiction), rec.NaturalKey).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("upsert record: %w", err)
	}

	rawJSON, _ := json.Marshal(rec.Raw)
	query := `INSERT INTO records (
		property_id, jurisdiction, dataset, kind, natural_key, issued_at, status,
		description, severity_class, device_id, inspection_result, work_type, completed_at, raw
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (dataset, jurisdiction, natural_key) DO UPDATE SET
		property_id = excluded.property_id,
		kind = excluded.kind,
		issued_at = excluded.issued_at,
		status = excluded.status,
		description = excluded.description,
		severity_class = excluded.severity_class,
		device_id = excluded.device_id,
		inspection_result = excluded.inspection_result,
		work_type = excluded.work_type,
		completed_at = excluded.completed_at,
		raw = excluded.raw`
	_, err = tx.ExecContext(ctx, query,
		rec.PropertyID, string(rec.Jurisdiction), string(rec.Dataset), string(rec.Kind),
		rec.NaturalKey, encodeTime(rec.IssuedAt), string(rec.Status), rec.Description,
		rec.SeverityClass, rec.DeviceID, rec.InspectionResult, rec.WorkType,
		encodeTime(rec.CompletedAt), string(rawJSON))
	if err != nil {
		return false, fmt.Errorf("upsert record: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("upsert record: %w", err)
	}
	return exists == 0, nil
}

const recordColumns = `property_id, jurisdiction, dataset, kind, natural_key, issued_at, status,
	description, severity_class, device_id, inspection_result, work_type, completed_at, raw`

func (s *SQLiteStore) Records(ctx context.Context, propertyID string) ([]model.NormalizedRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE property_id = ?
	ORDER BY dataset, natural_key`
	return s.queryRecords(ctx, query, propertyID)
}

func (s *SQLiteStore) OpenRecords(ctx context.Context, propertyID string) ([]model.NormalizedRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE property_id = ? AND status = ?
	ORDER BY dataset, natural_key`
	return s.queryRecords(ctx, query, propertyID, string(model.StatusOpen))
}

func (s *SQLiteStore) queryRecords(ctx context.Context, query string, args ...any) ([]model.NormalizedRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.NormalizedRecord
	for rows.Next() {
		var rec model.NormalizedRecord
		var jurisdiction, dataset, kind, status, issued, completed, rawJSON string
		err := rows.Scan(&rec.PropertyID, &jurisdiction, &dataset, &kind, &rec.NaturalKey,
			&issued, &status, &rec.Description, &rec.SeverityClass, &rec.DeviceID,
			&rec.InspectionResult, &rec.WorkType, &completed, &rawJSON)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Jurisdiction = model.Jurisdiction(jurisdiction)
		rec.Dataset = model.Dataset(dataset)
		rec.Kind = model.RecordKind(kind)
		rec.Status = model.RecordStatus(status)
		rec.IssuedAt = decodeTime(issued)
		rec.CompletedAt = decodeTime(completed)
		if rawJSON != "" && rawJSON != "null" {
			_ = json.Unmarshal([]byte(rawJSON), &rec.Raw)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	return records, nil
}

func (s *SQLiteStore) UpsertSummary(ctx context.Context, sum model.ComplianceSummary) error {
	byDataset, _ := json.Marshal(sum.ByDataset)
	byCategory, _ := json.Marshal(sum.ByCategory)
	query := `INSERT INTO summaries (
		property_id, score, tier, total_records, open_records, by_dataset, by_category, equipment_issues, analyzed_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (property_id) DO UPDATE SET
		score = excluded.score,
		tier = excluded.tier,
		total_records = excluded.total_records,
		open_records = excluded.open_records,
		by_dataset = excluded.by_dataset,
		by_category = excluded.by_category,
		equipment_issues = excluded.equipment_issues,
		analyzed_at = excluded.analyzed_at`
	_, err := s.db.ExecContext(ctx, query,
		sum.PropertyID, sum.Score, string(sum.Tier), sum.TotalRecords, sum.OpenRecords,
		string(byDataset), string(byCategory), sum.EquipmentIssues, encodeTime(sum.AnalyzedAt))
	if err != nil {
		return fmt.Errorf("upsert summary: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Summary(ctx context.Context, propertyID string) (model.ComplianceSummary, error) {
	query := `SELECT property_id, score, tier, total_records, open_records, by_dataset, by_category, equipment_issues, analyzed_at
	FROM summaries WHERE property_id = ?`
	var sum model.ComplianceSummary
	var tier, byDataset, byCategory, analyzed string
	err := s.db.QueryRowContext(ctx, query, propertyID).Scan(
		&sum.PropertyID, &sum.Score, &tier, &sum.TotalRecords, &sum.OpenRecords,
		&byDataset, &byCategory, &sum.EquipmentIssues, &analyzed)
	if err == sql.ErrNoRows {
		return model.ComplianceSummary{}, ErrNotFound
	}
	if err != nil {
		return model.ComplianceSummary{}, fmt.Errorf("get summary: %w", err)
	}
	sum.Tier = model.RiskTier(tier)
	sum.AnalyzedAt = decodeTime(analyzed)
	_ = json.Unmarshal([]byte(byDataset), &sum.ByDataset)
	_ = json.Unmarshal([]byte(byCategory), &sum.ByCategory)
	return sum, nil
}

// encodeTime stores times as RFC 3339; the zero time becomes the empty
// string so "no date" round-trips.
func encodeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func decodeTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
