package browse

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/five82/orchid/internal/catalog"
	"github.com/five82/orchid/internal/favorites"
	"github.com/five82/orchid/internal/state"
)

var (
	// ErrCategoryNotFound is returned when a workflow targets a category missing from the local copy.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrItemNotFound is returned when a workflow targets an item missing from its category.
	ErrItemNotFound = errors.New("item not found")
)

// Model is the catalog view model: the local copy of the remote catalog plus
// favorites membership, and the workflows that change the catalog.
type Model struct {
	store     catalog.CatalogStore
	state     *state.Store
	favorites *favorites.Store
}

// New wires a Model. All three collaborators are required.
func New(store catalog.CatalogStore, snapshots *state.Store, favs *favorites.Store) *Model {
	return &Model{store: store, state: snapshots, favorites: favs}
}

// State exposes the shared snapshot store.
func (m *Model) State() *state.Store {
	return m.state
}

// Favorites exposes the shared favorites store.
func (m *Model) Favorites() *favorites.Store {
	return m.favorites
}

// Load fetches the full catalog. On success the local copy is replaced; on
// failure it is left untouched and the error is recorded and logged. A
// response arriving after ctx is cancelled is discarded.
func (m *Model) Load(ctx context.Context) error {
	return m.load(ctx, nil)
}

// Refresh is Load for background reloads: when active reports false once the
// response arrives, the response is dropped and nil returned.
func (m *Model) Refresh(ctx context.Context, active func() bool) error {
	return m.load(ctx, active)
}

func (m *Model) load(ctx context.Context, active func() bool) error {
	m.state.BeginLoading()
	defer m.state.EndLoading()

	categories, err := m.store.FetchMenu(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if active != nil && !active() {
		return nil
	}
	if err != nil {
		m.state.Update(nil, err)
		log.Printf("menu fetch failed: %v", err)
		return fmt.Errorf("fetch menu: %w", err)
	}
	m.state.Update(categories, nil)
	return nil
}

// Focus runs when the browsing screen becomes active: favorites are re-read
// from the cache and the catalog is fetched again.
func (m *Model) Focus(ctx context.Context) error {
	if err := m.favorites.Reload(); err != nil {
		log.Printf("favorites reload failed: %v", err)
	}
	return m.Load(ctx)
}

// IsFavorite reports whether the item is in the favorites set.
func (m *Model) IsFavorite(itemID string) bool {
	return m.favorites.Contains(itemID)
}

// ToggleFavorite flips favorite membership of item and persists the result.
// The remote store is never contacted.
func (m *Model) ToggleFavorite(item catalog.Item) (bool, error) {
	added, err := m.favorites.Toggle(item)
	if err != nil {
		log.Printf("favorite toggle %s failed: %v", item.ID, err)
		return added, err
	}
	return added, nil
}

// Create appends a new item built from draft to the category and submits the
// whole category.
func (m *Model) Create(ctx context.Context, categoryID string, draft Draft) (catalog.Item, error) {
	category, ok := m.state.Category(categoryID)
	if !ok {
		return catalog.Item{}, fmt.Errorf("create in %q: %w", categoryID, ErrCategoryNotFound)
	}

	id, err := catalog.NextItemID(category.Items)
	switch {
	case errors.Is(err, catalog.ErrEmptyCategory):
		id = catalog.FirstItemID(category.ID)
	case err != nil:
		log.Printf("derive id in category %s failed: %v", category.ID, err)
		return catalog.Item{}, fmt.Errorf("derive item id: %w", err)
	}

	item := draft.Item(id)
	category.Items = append(category.Items, item)
	if err := m.submit(ctx, category); err != nil {
		return catalog.Item{}, err
	}
	return item, nil
}

// Update replaces the item with itemID by the draft. The rating is always
// submitted as catalog.RatingOnUpdate.
func (m *Model) Update(ctx context.Context, itemID string, draft Draft) error {
	category, idx, err := m.locate(itemID)
	if err != nil {
		return fmt.Errorf("update %q: %w", itemID, err)
	}

	item := draft.Item(itemID)
	item.Rating = catalog.RatingOnUpdate
	category.Items[idx] = item
	return m.submit(ctx, category)
}

// Delete removes the item with itemID from its category.
func (m *Model) Delete(ctx context.Context, itemID string) error {
	category, idx, err := m.locate(itemID)
	if err != nil {
		return fmt.Errorf("delete %q: %w", itemID, err)
	}

	kept := make([]catalog.Item, 0, len(category.Items)-1)
	kept = append(kept, category.Items[:idx]...)
	category.Items = append(kept, category.Items[idx+1:]...)
	return m.submit(ctx, category)
}

// Item looks up an item in the local copy.
func (m *Model) Item(itemID string) (catalog.Item, bool) {
	category, idx, err := m.locate(itemID)
	if err != nil {
		return catalog.Item{}, false
	}
	return category.Items[idx], true
}

func (m *Model) locate(itemID string) (catalog.Category, int, error) {
	categoryID := catalog.CategoryIDOf(itemID)
	category, ok := m.state.Category(categoryID)
	if !ok {
		return catalog.Category{}, -1, ErrCategoryNotFound
	}
	idx := category.IndexOf(itemID)
	if idx < 0 {
		return catalog.Category{}, -1, ErrItemNotFound
	}
	return category, idx, nil
}

// submit sends the modified category and reloads the catalog to converge.
// A reload failure after a successful submit is logged by Load but does not
// fail the workflow.
func (m *Model) submit(ctx context.Context, category catalog.Category) error {
	_, err := m.store.ReplaceCategory(ctx, category)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		log.Printf("replace category %s failed: %v", category.ID, err)
		return fmt.Errorf("replace category %s: %w", category.ID, err)
	}
	_ = m.Load(ctx)
	return nil
}
