// README: Fixed-route store backed by PostgreSQL.
package pricing

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

// ActiveRoutes loads the active fixed routes in id order. Id order is what
// makes first-match resolution and duplicate handling deterministic for a
// given snapshot.
func (s *Store) ActiveRoutes(ctx context.Context) ([]FixedRoute, error) {
	rows, err := s.db.Query(ctx, `
		SELECT fr.id, fr.origin, fr.destination, v.vehicle_type,
		       fr.price, COALESCE(fr.discount_percent, 0),
		       fr.competitor_price, COALESCE(fr.notes, '')
		FROM fixed_routes fr
		JOIN vehicles v ON v.id = fr.vehicle_id
		WHERE fr.active AND v.active
		ORDER BY fr.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []FixedRoute
	for rows.Next() {
		var r FixedRoute
		if err := rows.Scan(
			&r.ID, &r.Origin, &r.Destination, &r.VehicleType,
			&r.Price, &r.DiscountPercent, &r.CompetitorPrice, &r.Notes,
		); err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, rows.Err()
}
