package history

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/shouni/gemini-landscape-kit/pkg/domain"
)

var ErrEmptyImage = errors.New("history: redesigned image is empty")

// Entry は新しいデザインを保存するときの入力です。
type Entry struct {
	OriginalImage   domain.Image
	RedesignedImage domain.Image
	Catalog         domain.DesignCatalog
	Styles          []string
	ClimateZone     string
}

// Item は保存済みのデザインです。生成画像は RedesignedImageRef で別に保持します。
type Item struct {
	ID                 string               `json:"id"`
	Timestamp          time.Time            `json:"timestamp"`
	IsPinned           bool                 `json:"isPinned"`
	Styles             []string             `json:"styles"`
	ClimateZone        string               `json:"climateZone"`
	DesignCatalog      domain.DesignCatalog `json:"designCatalog"`
	OriginalImage      domain.Image         `json:"-"`
	RedesignedImageRef string               `json:"redesignedImageRef"`
}

// Store は容量上限付きのインメモリ履歴です。上限を超えると最も古いものから捨てます。
// 並行利用しても安全です。
//
// 捨てる順序は items だけが決めます。画像は items の退避コールバックでのみ削除されます。
type Store struct {
	items *lru.Cache[string, Item]

	mu     sync.RWMutex
	images map[string]domain.Image

	now func() time.Time
}

func NewStore(capacity int) (*Store, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("history: capacity must be positive, got %d", capacity)
	}
	s := &Store{images: make(map[string]domain.Image, capacity), now: time.Now}
	items, err := lru.NewWithEvict[string, Item](capacity, func(_ string, it Item) {
		s.mu.Lock()
		delete(s.images, it.RedesignedImageRef)
		s.mu.Unlock()
	})
	if err != nil {
		return nil, err
	}
	s.items = items
	return s, nil
}

// SaveNewRedesign は新しいデザインを保存し、保存された Item を返します。
func (s *Store) SaveNewRedesign(e Entry) (Item, error) {
	if e.RedesignedImage.IsEmpty() {
		return Item{}, ErrEmptyImage
	}

	ref := uuid.NewString()
	s.mu.Lock()
	s.images[ref] = e.RedesignedImage
	s.mu.Unlock()

	it := Item{
		ID:                 uuid.NewString(),
		Timestamp:          s.now(),
		Styles:             append([]string(nil), e.Styles...),
		ClimateZone:        e.ClimateZone,
		DesignCatalog:      e.Catalog.Normalize(),
		OriginalImage:      e.OriginalImage,
		RedesignedImageRef: ref,
	}
	s.items.Add(it.ID, it)
	return it, nil
}

// Get は ID に対応する Item を返します。参照しても捨てる順序は変わりません。
func (s *Store) Get(id string) (Item, bool) {
	return s.items.Peek(id)
}

// GetImage は Item の生成画像を返します。見つからなければ false です。
func (s *Store) GetImage(id string) (domain.Image, bool) {
	it, ok := s.items.Peek(id)
	if !ok {
		return domain.Image{}, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[it.RedesignedImageRef]
	return img, ok
}

// List は保存済みの Item を新しい順に返します。
func (s *Store) List() []Item {
	out := s.items.Values()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

func (s *Store) Len() int {
	return s.items.Len()
}
