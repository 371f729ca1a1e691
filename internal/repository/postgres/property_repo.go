package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/and161185/propledger/internal/errs"
	"github.com/and161185/propledger/internal/ledger"
	"github.com/and161185/propledger/internal/model"
	"github.com/and161185/propledger/internal/repository"
)

// PropertyRepo implements PropertyRepository using PostgreSQL.
type PropertyRepo struct{ db *DB }

var _ repository.PropertyRepository = (*PropertyRepo)(nil)

// NewPropertyRepo constructs a property repository.
func NewPropertyRepo(db *DB) *PropertyRepo { return &PropertyRepo{db: db} }

const propertyCols = `id, owner_id, title, description, address, property_type, longitude, latitude,
area, bedrooms, bathrooms, year_built, amenities, images, documents, status, price,
is_auction_enabled, auction_end_time, current_bid, minimum_bid, is_tokenized, token_id,
contract_address, token_uri, nft_metadata, views, ver, created_at, updated_at`

const eventCols = `property_id, id, type, price, occurred_at, tx_hash, from_id, to_id, metadata`

const (
	sqlInsertProperty = `INSERT INTO properties (` + propertyCols + `)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29,$30)`

	sqlSelectProperty = `SELECT ` + propertyCols + ` FROM properties WHERE id=$1`

	sqlSelectPropertyForUpdate = sqlSelectProperty + ` FOR UPDATE`

	sqlListProperties = `SELECT ` + propertyCols + ` FROM properties
WHERE ($1 = '' OR status = $1)
  AND ($2 = '' OR property_type = $2)
  AND ($3::boolean IS NULL OR is_tokenized = $3)
  AND ($4::uuid IS NULL OR owner_id = $4)
ORDER BY created_at, id
OFFSET $5 LIMIT $6`

	sqlUpdateProperty = `UPDATE properties SET
owner_id=$2, title=$3, description=$4, address=$5, property_type=$6, longitude=$7, latitude=$8,
area=$9, bedrooms=$10, bathrooms=$11, year_built=$12, amenities=$13, images=$14, documents=$15,
status=$16, price=$17, is_auction_enabled=$18, auction_end_time=$19, current_bid=$20, minimum_bid=$21,
is_tokenized=$22, token_id=$23, contract_address=$24, token_uri=$25, nft_metadata=$26, ver=$27, updated_at=$28
WHERE id=$1`

	sqlInsertEvent = `INSERT INTO property_events (property_id, seq, id, type, price, occurred_at, tx_hash, from_id, to_id, metadata)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`

	sqlSelectEvents = `SELECT ` + eventCols + ` FROM property_events
WHERE property_id = ANY($1::uuid[])
ORDER BY property_id, seq`

	sqlSelectHistory = `SELECT ` + eventCols + ` FROM property_events
WHERE property_id=$1 AND ($2 = '' OR type = $2)
ORDER BY seq
OFFSET $3 LIMIT $4`

	sqlSelectFavorites = `SELECT property_id, user_id FROM property_favorites
WHERE property_id = ANY($1::uuid[])
ORDER BY created_at, user_id`

	sqlPropertyExists = `SELECT EXISTS (SELECT 1 FROM properties WHERE id=$1)`

	sqlIncrementViews = `UPDATE properties SET views = views + 1 WHERE id=$1 RETURNING views`

	sqlLockProperty = `SELECT 1 FROM properties WHERE id=$1 FOR NO KEY UPDATE`

	sqlDeleteFavorite = `DELETE FROM property_favorites WHERE property_id=$1 AND user_id=$2`

	sqlInsertFavorite = `INSERT INTO property_favorites (property_id, user_id) VALUES ($1,$2)`
)

// Create inserts p and any history it already carries.
func (r *PropertyRepo) Create(ctx context.Context, p model.Property) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	nft, err := encodeNFT(p.NFTMetadata)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sqlInsertProperty,
		p.ID, p.Owner, p.Title, p.Description, p.Address, p.PropertyType,
		p.Location.Longitude, p.Location.Latitude, p.Area, p.Bedrooms, p.Bathrooms, p.YearBuilt,
		nonNil(p.Amenities), nonNil(p.Images), nonNil(p.Documents), string(p.Status), p.Price,
		p.IsAuctionEnabled, p.AuctionEndTime, p.CurrentBid, p.MinimumBid, p.IsTokenized, p.TokenID,
		p.ContractAddress, p.TokenURI, nft, p.Views, p.Version, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.ErrAlreadyExists
		}
		return err
	}
	for i, ev := range p.History {
		if err = insertEvent(ctx, tx, p.ID, i+1, ev); err != nil {
			return err
		}
	}
	return nil
}

// Get returns a property with its history and favorites.
func (r *PropertyRepo) Get(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	p, err := scanProperty(r.db.Pool.QueryRow(ctx, sqlSelectProperty, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	props := []model.Property{p}
	if err := attachChildren(ctx, r.db.Pool, props); err != nil {
		return nil, err
	}
	return &props[0], nil
}

// List returns properties matching f ordered by creation time.
func (r *PropertyRepo) List(ctx context.Context, f model.Filter) ([]model.Property, error) {
	var owner uuid.NullUUID
	if f.Owner != uuid.Nil {
		owner = uuid.NullUUID{UUID: f.Owner, Valid: true}
	}
	rows, err := r.db.Pool.Query(ctx, sqlListProperties,
		string(f.Status), f.PropertyType, f.Tokenized, owner, f.Offset, limitArg(f.Limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if err := attachChildren(ctx, r.db.Pool, out); err != nil {
		return nil, err
	}
	return out, nil
}

// History returns a page of ledger entries in append order.
func (r *PropertyRepo) History(ctx context.Context, id uuid.UUID, q model.HistoryQuery) ([]model.Event, error) {
	var exists bool
	if err := r.db.Pool.QueryRow(ctx, sqlPropertyExists, id).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrNotFound
	}

	rows, err := r.db.Pool.Query(ctx, sqlSelectHistory, id, string(q.Type), q.Offset, limitArg(q.Limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Event{}
	for rows.Next() {
		_, ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// Commit locks the row, checks the version, runs fn and persists the outcome
// in one transaction. The appended event, if any, shares the transaction.
func (r *PropertyRepo) Commit(
	ctx context.Context, id uuid.UUID, expectedVer int64, fn repository.MutateFunc,
) (out *model.Property, err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			out, err = nil, e
		}
	}()

	cur, err := scanProperty(tx.QueryRow(ctx, sqlSelectPropertyForUpdate, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	if cur.Version != expectedVer {
		return nil, errs.ErrVersionConflict
	}
	props := []model.Property{cur}
	if err = attachChildren(ctx, tx, props); err != nil {
		return nil, err
	}
	cur = props[0]

	mut, err := fn(cur.Clone())
	if err != nil {
		return nil, err
	}

	next := mut.Next.Clone()
	next.ID = cur.ID
	next.Views = cur.Views
	next.Favorites = cur.Favorites
	next.CreatedAt = cur.CreatedAt
	next.History = cur.History
	next.Version = cur.Version + 1

	nft, err := encodeNFT(next.NFTMetadata)
	if err != nil {
		return nil, err
	}
	_, err = tx.Exec(ctx, sqlUpdateProperty,
		next.ID, next.Owner, next.Title, next.Description, next.Address, next.PropertyType,
		next.Location.Longitude, next.Location.Latitude, next.Area, next.Bedrooms, next.Bathrooms, next.YearBuilt,
		nonNil(next.Amenities), nonNil(next.Images), nonNil(next.Documents), string(next.Status), next.Price,
		next.IsAuctionEnabled, next.AuctionEndTime, next.CurrentBid, next.MinimumBid, next.IsTokenized, next.TokenID,
		next.ContractAddress, next.TokenURI, nft, next.Version, next.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if mut.Event != nil {
		if err = insertEvent(ctx, tx, next.ID, len(cur.History)+1, *mut.Event); err != nil {
			return nil, err
		}
		next = ledger.Apply(next, *mut.Event)
	}
	return &next, nil
}

// IncrementViews bumps the counter in place and returns the new value.
func (r *PropertyRepo) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	var views int64
	if err := r.db.Pool.QueryRow(ctx, sqlIncrementViews, id).Scan(&views); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errs.ErrNotFound
		}
		return 0, err
	}
	return views, nil
}

// ToggleFavorite removes the favorite if present, otherwise adds it.
// Toggles on the same property serialize on the row lock.
func (r *PropertyRepo) ToggleFavorite(ctx context.Context, id, user uuid.UUID) (added bool, err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			added, err = false, e
		}
	}()

	var one int
	if err = tx.QueryRow(ctx, sqlLockProperty, id).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, errs.ErrNotFound
		}
		return false, err
	}
	tag, err := tx.Exec(ctx, sqlDeleteFavorite, id, user)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}
	if _, err = tx.Exec(ctx, sqlInsertFavorite, id, user); err != nil {
		if isForeignKeyViolation(err) {
			return false, errs.ErrNotFound
		}
		return false, err
	}
	return true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProperty(row scanner) (model.Property, error) {
	var (
		p      model.Property
		status string
		nft    []byte
	)
	err := row.Scan(
		&p.ID, &p.Owner, &p.Title, &p.Description, &p.Address, &p.PropertyType,
		&p.Location.Longitude, &p.Location.Latitude, &p.Area, &p.Bedrooms, &p.Bathrooms, &p.YearBuilt,
		&p.Amenities, &p.Images, &p.Documents, &status, &p.Price,
		&p.IsAuctionEnabled, &p.AuctionEndTime, &p.CurrentBid, &p.MinimumBid, &p.IsTokenized, &p.TokenID,
		&p.ContractAddress, &p.TokenURI, &nft, &p.Views, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return model.Property{}, err
	}
	p.Status = model.Status(status)
	if len(nft) > 0 {
		p.NFTMetadata = &model.NFTMetadata{}
		if err := json.Unmarshal(nft, p.NFTMetadata); err != nil {
			return model.Property{}, fmt.Errorf("decode nft metadata: %w", err)
		}
	}
	p.History = []model.Event{}
	return p, nil
}

func scanEvent(row scanner) (uuid.UUID, model.Event, error) {
	var (
		pid  uuid.UUID
		ev   model.Event
		typ  string
		meta []byte
	)
	if err := row.Scan(&pid, &ev.ID, &typ, &ev.Price, &ev.Date, &ev.TransactionHash, &ev.From, &ev.To, &meta); err != nil {
		return uuid.Nil, model.Event{}, err
	}
	ev.Type = model.EventType(typ)
	ev.Metadata = map[string]string{}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &ev.Metadata); err != nil {
			return uuid.Nil, model.Event{}, fmt.Errorf("decode event metadata: %w", err)
		}
	}
	return pid, ev, nil
}

// attachChildren loads history and favorites for props in two batched queries.
func attachChildren(ctx context.Context, q querier, props []model.Property) error {
	if len(props) == 0 {
		return nil
	}
	ids := make([]string, len(props))
	idx := make(map[uuid.UUID]int, len(props))
	for i, p := range props {
		ids[i] = p.ID.String()
		idx[p.ID] = i
	}

	rows, err := q.Query(ctx, sqlSelectEvents, ids)
	if err != nil {
		return err
	}
	for rows.Next() {
		pid, ev, err := scanEvent(rows)
		if err != nil {
			rows.Close()
			return err
		}
		if i, ok := idx[pid]; ok {
			props[i].History = append(props[i].History, ev)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = q.Query(ctx, sqlSelectFavorites, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var pid, user uuid.UUID
		if err := rows.Scan(&pid, &user); err != nil {
			return err
		}
		if i, ok := idx[pid]; ok {
			props[i].Favorites = append(props[i].Favorites, user)
		}
	}
	return rows.Err()
}

func insertEvent(ctx context.Context, q querier, propertyID uuid.UUID, seq int, ev model.Event) error {
	meta, err := json.Marshal(ev.Metadata)
	if err != nil {
		return fmt.Errorf("encode event metadata: %w", err)
	}
	_, err = q.Exec(ctx, sqlInsertEvent,
		propertyID, seq, ev.ID, string(ev.Type), ev.Price, ev.Date, ev.TransactionHash, ev.From, ev.To, meta)
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("event %s: %w", ev.ID, errs.ErrAlreadyExists)
	}
	return err
}

func encodeNFT(md *model.NFTMetadata) ([]byte, error) {
	if md == nil {
		return nil, nil
	}
	b, err := json.Marshal(md)
	if err != nil {
		return nil, fmt.Errorf("encode nft metadata: %w", err)
	}
	return b, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// limitArg maps 0 to NULL, which Postgres reads as LIMIT ALL.
func limitArg(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}
