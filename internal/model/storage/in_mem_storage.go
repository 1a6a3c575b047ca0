package storage

import (
	"context"

	"max.ks1230/budget-bot/internal/entity/user"
)

type InMemStorage struct {
	userMap     map[int64]user.Record
	snapshotMap map[int64][]byte
}

func NewInMemStorage() *InMemStorage {
	return &InMemStorage{
		userMap:     make(map[int64]user.Record),
		snapshotMap: make(map[int64][]byte),
	}
}

func (s *InMemStorage) GetUserByID(_ context.Context, id int64) (user.Record, error) {
	u, ok := s.userMap[id]
	if !ok {
		return user.Record{}, nil
	}
	return u, nil
}

func (s *InMemStorage) SaveUserByID(_ context.Context, id int64, rec user.Record) error {
	s.userMap[id] = rec
	return nil
}

func (s *InMemStorage) GetSnapshot(_ context.Context, userID int64) ([]byte, error) {
	return s.snapshotMap[userID], nil
}

func (s *InMemStorage) SaveSnapshot(_ context.Context, userID int64, payload []byte) error {
	s.snapshotMap[userID] = payload
	return nil
}
