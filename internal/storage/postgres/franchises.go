package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/suopuwu/jwt-pizza-service/internal/domain/errors"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
)

type franchiseRepository struct {
	storage *Storage
}

const (
	selectStores = `SELECT s.id, s.franchise_id, s.name, COALESCE(SUM(oi.price), 0)
                    FROM stores s
                    LEFT JOIN diner_orders o ON o.store_id = s.id
                    LEFT JOIN order_items oi ON oi.order_id = o.id
                    WHERE s.franchise_id = ANY($1)
                    GROUP BY s.id
                    ORDER BY s.id`
	selectFranchiseAdmins = `SELECT ur.object_id, u.id, u.name, u.email
                    FROM user_roles ur JOIN users u ON u.id = ur.user_id
                    WHERE ur.role = $1 AND ur.object_id = ANY($2)
                    ORDER BY u.id`
)

func (r *franchiseRepository) List(ctx context.Context, withDetails bool) ([]model.Franchise, error) {
	franchises, err := r.query(ctx, `SELECT id, name FROM franchises ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return r.attach(ctx, franchises, withDetails)
}

func (r *franchiseRepository) ListByAdmin(ctx context.Context, userID int64) ([]model.Franchise, error) {
	const query = `SELECT f.id, f.name FROM franchises f
                   JOIN user_roles ur ON ur.object_id = f.id AND ur.role = $1
                   WHERE ur.user_id = $2
                   ORDER BY f.id`
	franchises, err := r.query(ctx, query, string(model.RoleFranchisee), userID)
	if err != nil {
		return nil, err
	}
	return r.attach(ctx, franchises, true)
}

func (r *franchiseRepository) Get(ctx context.Context, id int64) (*model.Franchise, error) {
	var f model.Franchise
	err := r.storage.pool.QueryRow(ctx, `SELECT id, name FROM franchises WHERE id=$1`, id).Scan(&f.ID, &f.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	out, err := r.attach(ctx, []model.Franchise{f}, true)
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (r *franchiseRepository) Create(ctx context.Context, name string, admins []model.FranchiseAdmin) (*model.Franchise, error) {
	f := model.Franchise{Name: name, Admins: admins, Stores: []model.Store{}}
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, `INSERT INTO franchises (name) VALUES ($1) RETURNING id`, name).Scan(&f.ID); err != nil {
			return err
		}
		for _, a := range admins {
			if _, err := tx.Exec(ctx, insertRole, a.ID, string(model.RoleFranchisee), f.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isPgCode(err, codeUniqueViolation) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &f, nil
}

func (r *franchiseRepository) Delete(ctx context.Context, id int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE role=$1 AND object_id=$2`, string(model.RoleFranchisee), id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM stores WHERE franchise_id=$1`, id); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `DELETE FROM franchises WHERE id=$1`, id)
		return err
	})
}

func (r *franchiseRepository) CreateStore(ctx context.Context, franchiseID int64, name string) (*model.Store, error) {
	store := model.Store{FranchiseID: franchiseID, Name: name}
	err := r.storage.pool.QueryRow(ctx, `INSERT INTO stores (franchise_id, name) VALUES ($1, $2) RETURNING id`, franchiseID, name).Scan(&store.ID)
	if err != nil {
		if isPgCode(err, codeForeignKeyViolation) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &store, nil
}

func (r *franchiseRepository) DeleteStore(ctx context.Context, franchiseID, storeID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM stores WHERE franchise_id=$1 AND id=$2`, franchiseID, storeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *franchiseRepository) query(ctx context.Context, query string, args ...any) ([]model.Franchise, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.Franchise{}
	for rows.Next() {
		var f model.Franchise
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// attach loads stores for every franchise and, with details, their admins
// and per-store revenue.
func (r *franchiseRepository) attach(ctx context.Context, franchises []model.Franchise, withDetails bool) ([]model.Franchise, error) {
	if len(franchises) == 0 {
		return franchises, nil
	}

	ids := make([]int64, len(franchises))
	index := make(map[int64]int, len(franchises))
	for i := range franchises {
		ids[i] = franchises[i].ID
		index[franchises[i].ID] = i
		franchises[i].Stores = []model.Store{}
	}

	rows, err := r.storage.pool.Query(ctx, selectStores, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var s model.Store
		if err := rows.Scan(&s.ID, &s.FranchiseID, &s.Name, &s.TotalRevenue); err != nil {
			return nil, err
		}
		if !withDetails {
			s.TotalRevenue = 0
		}
		if i, ok := index[s.FranchiseID]; ok {
			franchises[i].Stores = append(franchises[i].Stores, s)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !withDetails {
		return franchises, nil
	}

	for i := range franchises {
		franchises[i].Admins = []model.FranchiseAdmin{}
	}
	adminRows, err := r.storage.pool.Query(ctx, selectFranchiseAdmins, string(model.RoleFranchisee), ids)
	if err != nil {
		return nil, err
	}
	defer adminRows.Close()
	for adminRows.Next() {
		var (
			franchiseID int64
			a           model.FranchiseAdmin
		)
		if err := adminRows.Scan(&franchiseID, &a.ID, &a.Name, &a.Email); err != nil {
			return nil, err
		}
		if i, ok := index[franchiseID]; ok {
			franchises[i].Admins = append(franchises[i].Admins, a)
		}
	}
	if err := adminRows.Err(); err != nil {
		return nil, err
	}
	return franchises, nil
}
