package leave

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EncashableTypesKey = "leave_types:encashable"

const DefaultEligibilityTTL = 10 * time.Minute

// EligibleTypes resolves the leave types that may be encashed. Types flagged as annual leave
// are preferred; when the flag column is missing or nothing carries it, types that allow
// encashment are used. Results are cached in Redis when a client is configured.
type EligibleTypes struct {
	store  Reader
	rdb    *redis.Client
	ttl    time.Duration
	sf     singleflight.Group
	logger *zap.Logger
}

func NewEligibleTypes(store Reader, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *EligibleTypes {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = DefaultEligibilityTTL
	}
	return &EligibleTypes{store: store, rdb: rdb, ttl: ttl, logger: logger.Named("leave.eligibility")}
}

// Names returns the eligible leave type names as a set.
func (e *EligibleTypes) Names(ctx context.Context) (map[string]struct{}, error) {
	if e.rdb != nil {
		if cached, err := e.rdb.Get(ctx, EncashableTypesKey).Result(); err == nil {
			var names []string
			if json.Unmarshal([]byte(cached), &names) == nil {
				return toSet(names), nil
			}
		} else if !errors.Is(err, redis.Nil) {
			e.logger.Warn("eligible leave type cache read failed", zap.Error(err))
		}
	}

	v, err, _ := e.sf.Do(EncashableTypesKey, func() (any, error) {
		names, err := e.load(ctx)
		if err != nil {
			return nil, err
		}
		if e.rdb != nil {
			if data, err := json.Marshal(names); err == nil {
				if err := e.rdb.Set(ctx, EncashableTypesKey, string(data), e.ttl).Err(); err != nil {
					e.logger.Warn("eligible leave type cache write failed", zap.Error(err))
				}
			}
		}
		return names, nil
	})
	if err != nil {
		return nil, err
	}
	return toSet(v.([]string)), nil
}

func (e *EligibleTypes) load(ctx context.Context) ([]string, error) {
	hasFlag, err := e.store.HasLeaveTypeColumn(ctx, FlagAnnualLeave)
	if err != nil {
		return nil, fmt.Errorf("check leave type columns: %w", err)
	}
	if hasFlag {
		flagged, err := e.store.LeaveTypeNames(ctx, FlagAnnualLeave)
		if err != nil {
			return nil, fmt.Errorf("list annual leave types: %w", err)
		}
		if len(flagged) > 0 {
			return flagged, nil
		}
	}
	names, err := e.store.LeaveTypeNames(ctx, FlagAllowEncashment)
	if err != nil {
		return nil, fmt.Errorf("list encashable leave types: %w", err)
	}
	return names, nil
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
