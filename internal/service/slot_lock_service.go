package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSlotLocked is returned when another booking holds the slot.
var ErrSlotLocked = errors.New("slot is being booked by another request")

// RedisSlotLockKeyPrefix namespaces slot lock keys.
const RedisSlotLockKeyPrefix = "booking:slot-lock:"

const redisLockTimeout = 2 * time.Second

// releaseSlotLockScript deletes the key only if it still holds our token, so an
// expired lock taken over by another request is left alone.
var releaseSlotLockScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// SlotLocker serializes bookings of a single (test, date, slot).
type SlotLocker interface {
	Acquire(ctx context.Context, testSlug, bookingDate, bookingSlot string) (release func(), err error)
}

// SlotLockService implements SlotLocker on Redis with SET NX PX.
type SlotLockService struct {
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

func NewSlotLockService(redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) *SlotLockService {
	return &SlotLockService{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

func SlotLockKey(testSlug, bookingDate, bookingSlot string) string {
	return fmt.Sprintf("%s%s:%s:%s", RedisSlotLockKeyPrefix, testSlug, bookingDate, bookingSlot)
}

// Acquire takes the lock or returns ErrSlotLocked. The returned release func
// is safe to call once the booking is done; it never fails the request.
func (s *SlotLockService) Acquire(ctx context.Context, testSlug, bookingDate, bookingSlot string) (func(), error) {
	key := SlotLockKey(testSlug, bookingDate, bookingSlot)
	token := uuid.NewString()

	ok, err := s.redisClient.SetNX(ctx, key, token, s.ttl).Result()
	if err != nil {
		s.log.Warnf("Failed to acquire slot lock %s: %+v", key, err)
		return nil, fmt.Errorf("acquire slot lock %s: %w", key, err)
	}
	if !ok {
		return nil, ErrSlotLocked
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), redisLockTimeout)
		defer cancel()

		if err := releaseSlotLockScript.Run(releaseCtx, s.redisClient, []string{key}, token).Err(); err != nil {
			s.log.Warnf("Failed to release slot lock %s: %+v", key, err)
			return
		}
		s.log.Debugf("Released slot lock %s", key)
	}

	s.log.Debugf("Acquired slot lock %s", key)
	return release, nil
}
