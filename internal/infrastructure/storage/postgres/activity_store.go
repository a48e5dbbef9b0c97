package postgres

import (
	"context"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"hardpos/internal/domain/activity"
)

// Compile-time checks.
var (
	_ activity.Recorder = (*ActivityStore)(nil)
	_ activity.Reader   = (*ActivityStore)(nil)
)

// compressionAlgo marks how the payload column is stored.
type compressionAlgo string

const (
	compressionNone compressionAlgo = "none"
	compressionZstd compressionAlgo = "zstd"
)

// ActivityStore persists the activity log. Payloads above the threshold are
// zstd-compressed on write; readers always receive them decompressed.
type ActivityStore struct {
	txManager         *TxManager
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int
}

// NewActivityStore creates an activity store.
func NewActivityStore(txManager *TxManager) (*ActivityStore, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &ActivityStore{
		txManager:         txManager,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: 10 * 1024,
	}, nil
}

// Record appends an entry to the activity log.
func (s *ActivityStore) Record(ctx context.Context, entry activity.Entry) error {
	payload := []byte(entry.Payload)
	algo := compressionNone
	if len(payload) > s.compressThreshold {
		payload = s.encoder.EncodeAll(payload, nil)
		algo = compressionZstd
	}

	_, err := s.txManager.GetQuerier(ctx).Exec(ctx, `
		INSERT INTO activity_log (
			id, entity_type, entity_id, action, actor, summary,
			payload, compression_algo, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		entry.ID, entry.EntityType, entry.EntityID, entry.Action,
		entry.Actor, entry.Summary, payload, algo, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

// Recent lists the newest entries, newest first.
func (s *ActivityStore) Recent(ctx context.Context, limit int) ([]activity.Entry, error) {
	rows, err := s.txManager.GetQuerier(ctx).Query(ctx, `
		SELECT id, entity_type, entity_id, action, actor, summary,
			   payload, compression_algo, created_at
		FROM activity_log
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var e activity.Entry
		var payload []byte
		var algo compressionAlgo

		err := rows.Scan(
			&e.ID, &e.EntityType, &e.EntityID, &e.Action, &e.Actor,
			&e.Summary, &payload, &algo, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan activity entry: %w", err)
		}

		if algo == compressionZstd && len(payload) > 0 {
			decompressed, err := s.decoder.DecodeAll(payload, nil)
			if err != nil {
				return nil, fmt.Errorf("decompress payload: %w", err)
			}
			payload = decompressed
		}
		e.Payload = payload

		entries = append(entries, e)
	}

	return entries, rows.Err()
}
