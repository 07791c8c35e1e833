package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/insurancebuddy/internal/common"
	"github.com/bobmcallan/insurancebuddy/internal/interfaces"
	"github.com/bobmcallan/insurancebuddy/internal/models"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	cfg := common.NewDefaultConfig()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "site.db")

	mgr, err := NewManager(common.NewSilentLogger(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { mgr.Close() })
	return mgr
}

func TestNewManager_EmptyPath(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Storage.Path = ""
	_, err := NewManager(common.NewSilentLogger(), cfg)
	assert.Error(t, err)
}

func TestNewManager_Backend(t *testing.T) {
	mgr := testManager(t)
	assert.Equal(t, "sqlite", mgr.Backend())
	assert.NotNil(t, mgr.ContentStore())
	assert.NotNil(t, mgr.InternalStore())
}

func TestPages_NotFoundThenRoundTrip(t *testing.T) {
	store := testManager(t).ContentStore()
	ctx := context.Background()

	_, err := store.GetHomePage(ctx)
	require.ErrorIs(t, err, interfaces.ErrNotFound)

	home := models.DefaultHomePageContent()
	home.HeroHeadline = "Saved headline"
	require.NoError(t, store.SaveHomePage(ctx, home))
	assert.False(t, home.CreatedAt.IsZero())
	assert.False(t, home.UpdatedAt.IsZero())

	got, err := store.GetHomePage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Saved headline", got.HeroHeadline)
	assert.Len(t, got.Stats, len(home.Stats))
	assert.True(t, home.CreatedAt.Equal(got.CreatedAt))

	// Second save keeps created_at and bumps updated_at.
	created := got.CreatedAt
	time.Sleep(2 * time.Millisecond)
	require.NoError(t, store.SaveHomePage(ctx, got))
	again, err := store.GetHomePage(ctx)
	require.NoError(t, err)
	assert.True(t, created.Equal(again.CreatedAt))
	assert.True(t, again.UpdatedAt.After(created))

	require.NoError(t, store.DeletePage(ctx, models.PageHome))
	_, err = store.GetHomePage(ctx)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestPages_KindsAreIndependent(t *testing.T) {
	store := testManager(t).ContentStore()
	ctx := context.Background()

	require.NoError(t, store.SaveAboutPage(ctx, models.DefaultAboutPageContent()))
	require.NoError(t, store.SaveProductPage(ctx, models.DefaultProductPageContent()))
	require.NoError(t, store.SaveContactPage(ctx, models.DefaultContactPageContent()))

	about, err := store.GetAboutPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Our mission", about.Kicker)
	assert.Len(t, about.Values, 3)

	product, err := store.GetProductPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Plan builder", product.Kicker)

	contact, err := store.GetContactPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "support@insurancebuddy.com", contact.SupportEmail)

	_, err = store.GetHomePage(ctx)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestPartners_CRUDAndOrdering(t *testing.T) {
	store := testManager(t).ContentStore()
	ctx := context.Background()

	yale := &models.PartnerOrganization{Name: "Yale", LogoURL: "https://example.com/yale.png", DisplayOrder: 2}
	mit := &models.PartnerOrganization{Name: "MIT", LogoURL: "https://example.com/mit.png", DisplayOrder: 1}
	harvard := &models.PartnerOrganization{Name: "Harvard", LogoURL: "https://example.com/h.png", DisplayOrder: 1}
	for _, p := range []*models.PartnerOrganization{yale, mit, harvard} {
		require.NoError(t, store.SavePartner(ctx, p))
		assert.Regexp(t, `^p_[0-9a-f]{8}$`, p.PartnerID)
	}

	list, err := store.ListPartners(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Harvard", "MIT", "Yale"}, []string{list[0].Name, list[1].Name, list[2].Name})

	got, err := store.GetPartner(ctx, mit.PartnerID)
	require.NoError(t, err)
	assert.Equal(t, "MIT", got.Name)

	// Update keeps the id.
	got.DisplayOrder = 9
	require.NoError(t, store.SavePartner(ctx, got))
	list, err = store.ListPartners(ctx)
	require.NoError(t, err)
	assert.Equal(t, "MIT", list[2].Name)

	require.NoError(t, store.DeletePartner(ctx, mit.PartnerID))
	_, err = store.GetPartner(ctx, mit.PartnerID)
	assert.ErrorIs(t, err, interfaces.ErrNotFound)

	// Deleting again is not an error.
	assert.NoError(t, store.DeletePartner(ctx, mit.PartnerID))
}

func TestSegments_CRUDAndOrdering(t *testing.T) {
	store := testManager(t).ContentStore()
	ctx := context.Background()

	list, err := store.ListSegments(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	for _, s := range models.DefaultSegments() {
		require.NoError(t, store.SaveSegment(ctx, s))
	}

	list, err = store.ListSegments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "adult", list[0].Slug)
	assert.True(t, list[0].IsDefault)

	seg, err := store.GetSegment(ctx, "family")
	require.NoError(t, err)
	assert.Equal(t, "Families", seg.Label)

	require.NoError(t, store.DeleteSegment(ctx, "family"))
	_, err = store.GetSegment(ctx, "family")
	assert.ErrorIs(t, err, interfaces.ErrNotFound)
}

func TestInquiries_NewestFirstWithLimit(t *testing.T) {
	store := testManager(t).ContentStore()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		inq := &models.ContactInquiry{
			Name:      name,
			Email:     name + "@example.com",
			Message:   "hello",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.SaveInquiry(ctx, inq))
		assert.Regexp(t, `^inq_[0-9a-f]{8}$`, inq.InquiryID)
	}

	all, err := store.ListInquiries(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Name)
	assert.Equal(t, "first", all[2].Name)

	two, err := store.ListInquiries(ctx, 2)
	require.NoError(t, err)
	require.Len(t, two, 2)
	assert.Equal(t, "second", two[1].Name)

	require.NoError(t, store.DeleteInquiry(ctx, all[0].InquiryID))
	rest, err := store.ListInquiries(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, rest, 2)
}

func TestInquiry_CreatedAtDefaulted(t *testing.T) {
	store := testManager(t).ContentStore()
	inq := &models.ContactInquiry{Name: "n", Email: "n@example.com", Message: "m"}
	require.NoError(t, store.SaveInquiry(context.Background(), inq))
	assert.False(t, inq.CreatedAt.IsZero())
}

func TestInternalStore_Users(t *testing.T) {
	store := testManager(t).InternalStore()
	ctx := context.Background()

	_, err := store.GetUser(ctx, "admin")
	require.ErrorIs(t, err, interfaces.ErrNotFound)

	for _, id := range []string{"zed", "admin"} {
		require.NoError(t, store.SaveUser(ctx, &models.InternalUser{
			UserID:       id,
			Email:        id + "@example.com",
			PasswordHash: "hash",
			Role:         models.RoleAdmin,
			CreatedAt:    time.Now().Truncate(time.Second),
		}))
	}

	got, err := store.GetUser(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", got.Email)
	assert.True(t, got.IsAdmin())

	ids, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "zed"}, ids)

	require.NoError(t, store.DeleteUser(ctx, "zed"))
	ids, err = store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin"}, ids)
}

func TestManager_PersistsAcrossReopen(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "nested", "site.db")
	ctx := context.Background()

	mgr, err := NewManager(common.NewSilentLogger(), cfg)
	require.NoError(t, err)
	require.NoError(t, mgr.ContentStore().SaveContactPage(ctx, models.DefaultContactPageContent()))
	require.NoError(t, mgr.Close())

	reopened, err := NewManager(common.NewSilentLogger(), cfg)
	require.NoError(t, err)
	defer reopened.Close()

	page, err := reopened.ContentStore().GetContactPage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "We are here to help", page.Kicker)
}
