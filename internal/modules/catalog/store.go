// README: Catalog store backed by PostgreSQL (read-only projections).
package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// ActiveVehicles loads the active vehicle classes ordered by id, which is the
// tie-break order the quote assembler relies on.
func (s *Store) ActiveVehicles(ctx context.Context) ([]VehicleClass, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, vehicle_type, name_en, name_tr,
		       capacity_min, capacity_max, baggage_capacity,
		       COALESCE(base_multiplier, 1.0)
		FROM vehicles
		WHERE active
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []VehicleClass
	for rows.Next() {
		v := VehicleClass{Active: true}
		if err := rows.Scan(
			&v.ID, &v.Type, &v.NameEN, &v.NameTR,
			&v.CapacityMin, &v.CapacityMax, &v.BaggageCapacity,
			&v.BaseMultiplier,
		); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// ParamRows loads all pricing configuration rows. Precedence is resolved in
// the service, not here.
func (s *Store) ParamRows(ctx context.Context) ([]ParamRow, error) {
	rows, err := s.db.Query(ctx, `
		SELECT config_key, config_value, vehicle_type
		FROM pricing_config`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var params []ParamRow
	for rows.Next() {
		var row ParamRow
		if err := rows.Scan(&row.Key, &row.Value, &row.VehicleType); err != nil {
			return nil, err
		}
		params = append(params, row)
	}
	return params, rows.Err()
}
