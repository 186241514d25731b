package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"prepsquad/internal/models"
)

// GroupStore keeps groups by id plus an insertion-order index so listings
// come back in creation order.
type GroupStore struct {
	mu    sync.RWMutex
	byID  map[string]*models.Group
	order []string
}

func NewGroupStore() *GroupStore {
	return &GroupStore{byID: make(map[string]*models.Group)}
}

// Create makes a group with the creator as its sole initial member.
func (s *GroupStore) Create(name, description, prepType, creatorID string) (*models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := &models.Group{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		PrepType:    prepType,
		CreatorID:   creatorID,
		Members:     []string{creatorID},
		CreatedAt:   time.Now().UTC(),
	}
	s.byID[g.ID] = g
	s.order = append(s.order, g.ID)
	return cloneGroup(g), nil
}

func (s *GroupStore) Get(id string) (*models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.byID[id]
	if !ok {
		return nil, ErrGroupNotFound
	}
	return cloneGroup(g), nil
}

// List returns groups in creation order. A non-empty prepType keeps only
// groups whose prep_type matches exactly.
func (s *GroupStore) List(prepType string) []*models.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := make([]*models.Group, 0, len(s.order))
	for _, id := range s.order {
		g := s.byID[id]
		if prepType != "" && g.PrepType != prepType {
			continue
		}
		groups = append(groups, cloneGroup(g))
	}
	return groups
}

// Join appends userID to the group's members unless already present. The
// check and the append happen under the store lock, so a double join never
// duplicates the member.
func (s *GroupStore) Join(groupID, userID string) (*models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.byID[groupID]
	if !ok {
		return nil, ErrGroupNotFound
	}
	for _, m := range g.Members {
		if m == userID {
			return cloneGroup(g), nil
		}
	}
	g.Members = append(g.Members, userID)
	return cloneGroup(g), nil
}

func cloneGroup(g *models.Group) *models.Group {
	c := *g
	c.Members = append([]string{}, g.Members...)
	return &c
}
