package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideashare/backend/internal/domain"
	"github.com/ideashare/backend/internal/events"
	"github.com/ideashare/backend/internal/repo"
	"github.com/ideashare/backend/internal/service"
)

// mockIdeaRepo is a hand-written test double for repo.IdeaRepo.
// Each method is a function field: set only the ones your test needs.
type mockIdeaRepo struct {
	create     func(ctx context.Context, idea domain.Idea) (domain.Idea, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Idea, error)
	list       func(ctx context.Context) ([]domain.Idea, error)
	update     func(ctx context.Context, idea domain.Idea) (domain.Idea, error)
	delete     func(ctx context.Context, id uuid.UUID) error
	toggleLike func(ctx context.Context, id uuid.UUID, principalID string) (domain.Idea, error)
}

func (m *mockIdeaRepo) Create(ctx context.Context, idea domain.Idea) (domain.Idea, error) {
	return m.create(ctx, idea)
}
func (m *mockIdeaRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Idea, error) {
	return m.getByID(ctx, id)
}
func (m *mockIdeaRepo) List(ctx context.Context) ([]domain.Idea, error) {
	return m.list(ctx)
}
func (m *mockIdeaRepo) Update(ctx context.Context, idea domain.Idea) (domain.Idea, error) {
	return m.update(ctx, idea)
}
func (m *mockIdeaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockIdeaRepo) ToggleLike(ctx context.Context, id uuid.UUID, principalID string) (domain.Idea, error) {
	return m.toggleLike(ctx, id, principalID)
}

// compile-time check: mockIdeaRepo must satisfy repo.IdeaRepo.
var _ repo.IdeaRepo = (*mockIdeaRepo)(nil)

// stubAuthors resolves every author from a fixed map, falling back to the
// anonymous placeholder like the real directory does.
type stubAuthors struct {
	known    map[string]domain.Author
	resolves int
	upserted []domain.Author
}

func (s *stubAuthors) Upsert(_ context.Context, a domain.Author) (domain.Author, error) {
	if s.known == nil {
		s.known = map[string]domain.Author{}
	}
	s.known[a.ID] = a
	s.upserted = append(s.upserted, a)
	return a, nil
}
func (s *stubAuthors) Resolve(_ context.Context, id string) (domain.Author, error) {
	s.resolves++
	if a, ok := s.known[id]; ok {
		return a, nil
	}
	return domain.AnonymousAuthor(id), nil
}

var _ repo.AuthorRepo = (*stubAuthors)(nil)

// recordingPublisher captures published events.
type recordingPublisher struct {
	events []events.Event
	err    error
}

func (r *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	r.events = append(r.events, e)
	return r.err
}

// memIdeaRepo is a small in-memory repo.IdeaRepo used where a test needs the
// store to keep state across several service calls.
type memIdeaRepo struct {
	ideas map[uuid.UUID]domain.Idea
}

func newMemIdeaRepo() *memIdeaRepo {
	return &memIdeaRepo{ideas: map[uuid.UUID]domain.Idea{}}
}

func (m *memIdeaRepo) Create(_ context.Context, idea domain.Idea) (domain.Idea, error) {
	idea.ID = uuid.New()
	idea.CreatedAt = time.Now().UTC()
	idea.UpdatedAt = idea.CreatedAt
	m.ideas[idea.ID] = idea
	return idea, nil
}
func (m *memIdeaRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Idea, error) {
	idea, ok := m.ideas[id]
	if !ok {
		return domain.Idea{}, domain.ErrNotFound
	}
	return idea, nil
}
func (m *memIdeaRepo) List(_ context.Context) ([]domain.Idea, error) {
	var out []domain.Idea
	for _, i := range m.ideas {
		out = append(out, i)
	}
	return out, nil
}
func (m *memIdeaRepo) Update(_ context.Context, idea domain.Idea) (domain.Idea, error) {
	cur, ok := m.ideas[idea.ID]
	if !ok || cur.AuthorID != idea.AuthorID {
		return domain.Idea{}, domain.ErrNotFound
	}
	cur.Title, cur.Description, cur.Tags = idea.Title, idea.Description, idea.Tags
	m.ideas[idea.ID] = cur
	return cur, nil
}
func (m *memIdeaRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.ideas[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.ideas, id)
	return nil
}
func (m *memIdeaRepo) ToggleLike(_ context.Context, id uuid.UUID, principalID string) (domain.Idea, error) {
	cur, ok := m.ideas[id]
	if !ok {
		return domain.Idea{}, domain.ErrNotFound
	}
	likes := []string{}
	found := false
	for _, l := range cur.Likes {
		if l == principalID {
			found = true
			continue
		}
		likes = append(likes, l)
	}
	if !found {
		likes = append(likes, principalID)
	}
	cur.Likes = likes
	m.ideas[id] = cur
	return cur, nil
}

var _ repo.IdeaRepo = (*memIdeaRepo)(nil)

// ---- helpers ---------------------------------------------------------------

var (
	u1 = &domain.Principal{ID: "u1", DisplayName: "Ada", Contact: "ada@example.com"}
	u2 = &domain.Principal{ID: "u2", DisplayName: "Grace", Contact: "grace@example.com"}
)

func ownedIdea(owner string) domain.Idea {
	return domain.Idea{
		ID:          uuid.New(),
		AuthorID:    owner,
		Title:       "Robots",
		Description: "Build a robot",
		Tags:        []string{"hardware"},
		Likes:       []string{},
	}
}

func echoRepo() *mockIdeaRepo {
	// A repo that echoes whatever it receives back, for tests that only care
	// about the service's own rules.
	return &mockIdeaRepo{
		create: func(_ context.Context, i domain.Idea) (domain.Idea, error) {
			i.ID = uuid.New()
			return i, nil
		},
		update: func(_ context.Context, i domain.Idea) (domain.Idea, error) { return i, nil },
	}
}

func newService(r repo.IdeaRepo) (*service.IdeaService, *stubAuthors, *recordingPublisher) {
	authors := &stubAuthors{}
	pub := &recordingPublisher{}
	return service.NewIdeaService(r, authors, pub), authors, pub
}

// ---- Create ----------------------------------------------------------------

func TestIdeaService_Create_Valid(t *testing.T) {
	svc, authors, pub := newService(echoRepo())

	got, err := svc.Create(context.Background(), u1, domain.IdeaInput{Description: "Build a robot"})

	require.NoError(t, err)
	assert.Equal(t, "u1", got.AuthorID)
	assert.Equal(t, "Build a robot", got.Description)
	assert.Empty(t, got.Likes)
	assert.Equal(t, 0, got.LikeCount())
	assert.Equal(t, u1.Author(), got.Author)
	assert.Equal(t, []domain.Author{u1.Author()}, authors.upserted)
	require.Len(t, pub.events, 1)
	assert.Equal(t, events.Created, pub.events[0].Type)
	assert.Equal(t, got.ID.String(), pub.events[0].IdeaID)
}

func TestIdeaService_Create_NormalizesPayload(t *testing.T) {
	var stored domain.Idea
	r := echoRepo()
	r.create = func(_ context.Context, i domain.Idea) (domain.Idea, error) {
		stored = i
		return i, nil
	}
	svc, _, _ := newService(r)

	_, err := svc.Create(context.Background(), u1, domain.IdeaInput{
		Title:       "  Robots ",
		Description: " Build a robot ",
		Tags:        domain.TagInput{" a", "", "b "},
	})

	require.NoError(t, err)
	assert.Equal(t, "Robots", stored.Title)
	assert.Equal(t, "Build a robot", stored.Description)
	assert.Equal(t, []string{"a", "b"}, stored.Tags)
}

func TestIdeaService_Create_NamelessPrincipalShowsAnonymous(t *testing.T) {
	svc, _, _ := newService(echoRepo())
	nameless := &domain.Principal{ID: "u9"}

	got, err := svc.Create(context.Background(), nameless, domain.IdeaInput{Description: "Build a robot"})

	require.NoError(t, err)
	assert.Equal(t, domain.AnonymousAuthor("u9"), got.Author)
}

func TestIdeaService_Create_Unauthenticated(t *testing.T) {
	svc, _, _ := newService(echoRepo())

	_, err := svc.Create(context.Background(), nil, domain.IdeaInput{Description: "x"})

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestIdeaService_Create_EmptyPrincipalID(t *testing.T) {
	svc, _, _ := newService(echoRepo())

	_, err := svc.Create(context.Background(), &domain.Principal{}, domain.IdeaInput{Description: "x"})

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestIdeaService_Create_BlankDescription(t *testing.T) {
	svc, authors, pub := newService(echoRepo())

	_, err := svc.Create(context.Background(), u1, domain.IdeaInput{Description: "  "})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "description required")
	assert.Empty(t, authors.upserted, "nothing should be written on validation failure")
	assert.Empty(t, pub.events)
}

func TestIdeaService_Create_ReportsAllViolations(t *testing.T) {
	svc, _, _ := newService(echoRepo())

	_, err := svc.Create(context.Background(), u1, domain.IdeaInput{
		Title: strings.Repeat("t", domain.MaxTitleLength+1),
	})

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 2)
}

func TestIdeaService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockIdeaRepo{
		create: func(_ context.Context, _ domain.Idea) (domain.Idea, error) {
			return domain.Idea{}, repoErr
		},
	}
	svc, _, pub := newService(r)

	_, err := svc.Create(context.Background(), u1, domain.IdeaInput{Description: "x"})

	assert.ErrorIs(t, err, repoErr)
	assert.Empty(t, pub.events)
}

func TestIdeaService_Create_PublishFailureIsNotAnError(t *testing.T) {
	authors := &stubAuthors{}
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := service.NewIdeaService(echoRepo(), authors, pub)

	_, err := svc.Create(context.Background(), u1, domain.IdeaInput{Description: "x"})

	assert.NoError(t, err)
}

func TestIdeaService_Create_NilPublisher(t *testing.T) {
	svc := service.NewIdeaService(echoRepo(), &stubAuthors{}, nil)

	_, err := svc.Create(context.Background(), u1, domain.IdeaInput{Description: "x"})

	assert.NoError(t, err)
}

// ---- GetByID / List --------------------------------------------------------

func TestIdeaService_GetByID_AttachesAuthor(t *testing.T) {
	want := ownedIdea("u1")
	r := &mockIdeaRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Idea, error) {
			require.Equal(t, want.ID, id)
			return want, nil
		},
	}
	svc, authors, _ := newService(r)
	authors.known = map[string]domain.Author{"u1": u1.Author()}

	got, err := svc.GetByID(context.Background(), want.ID.String())

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, "Ada", got.Author.DisplayName)
}

func TestIdeaService_GetByID_UnknownAuthorIsAnonymous(t *testing.T) {
	want := ownedIdea("ghost")
	r := &mockIdeaRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Idea, error) { return want, nil },
	}
	svc, _, _ := newService(r)

	got, err := svc.GetByID(context.Background(), want.ID.String())

	require.NoError(t, err)
	assert.Equal(t, domain.AnonymousAuthor("ghost"), got.Author)
}

func TestIdeaService_GetByID_NotFound(t *testing.T) {
	r := &mockIdeaRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Idea, error) {
			return domain.Idea{}, domain.ErrNotFound
		},
	}
	svc, _, _ := newService(r)

	_, err := svc.GetByID(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIdeaService_GetByID_MalformedIDIsNotFound(t *testing.T) {
	// getByID is left nil: the repo must never be reached.
	svc, _, _ := newService(&mockIdeaRepo{})

	_, err := svc.GetByID(context.Background(), "not-a-uuid")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIdeaService_List_ResolvesEachAuthorOnce(t *testing.T) {
	ideas := []domain.Idea{ownedIdea("u1"), ownedIdea("u2"), ownedIdea("u1")}
	r := &mockIdeaRepo{
		list: func(_ context.Context) ([]domain.Idea, error) { return ideas, nil },
	}
	svc, authors, _ := newService(r)
	authors.known = map[string]domain.Author{"u1": u1.Author(), "u2": u2.Author()}

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Ada", got[0].Author.DisplayName)
	assert.Equal(t, "Grace", got[1].Author.DisplayName)
	assert.Equal(t, "Ada", got[2].Author.DisplayName)
	assert.Equal(t, 2, authors.resolves)
}

func TestIdeaService_List_Empty(t *testing.T) {
	r := &mockIdeaRepo{
		list: func(_ context.Context) ([]domain.Idea, error) { return nil, nil },
	}
	svc, _, _ := newService(r)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	// Should return an empty slice, not nil: callers can safely range over it.
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestIdeaService_List_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	r := &mockIdeaRepo{
		list: func(_ context.Context) ([]domain.Idea, error) { return nil, repoErr },
	}
	svc, _, _ := newService(r)

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, repoErr)
}

// ---- Update ----------------------------------------------------------------

func repoWith(idea domain.Idea) *mockIdeaRepo {
	r := echoRepo()
	r.getByID = func(_ context.Context, id uuid.UUID) (domain.Idea, error) {
		if id != idea.ID {
			return domain.Idea{}, domain.ErrNotFound
		}
		return idea, nil
	}
	return r
}

func TestIdeaService_Update_Owner(t *testing.T) {
	idea := ownedIdea("u1")
	svc, _, pub := newService(repoWith(idea))

	got, err := svc.Update(context.Background(), u1, idea.ID.String(), domain.IdeaPatch{
		Description: "Build two robots",
		Tags:        domain.TagInput{"swarm", " ai"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Build two robots", got.Description)
	assert.Equal(t, "Robots", got.Title, "absent title must be left alone")
	assert.Equal(t, []string{"swarm", "ai"}, got.Tags)
	require.Len(t, pub.events, 1)
	assert.Equal(t, events.Updated, pub.events[0].Type)
}

func TestIdeaService_Update_EmptyDescriptionIsIgnored(t *testing.T) {
	idea := ownedIdea("u1")
	svc, _, _ := newService(repoWith(idea))

	got, err := svc.Update(context.Background(), u1, idea.ID.String(), domain.IdeaPatch{Description: ""})

	require.NoError(t, err)
	assert.Equal(t, "Build a robot", got.Description)
}

func TestIdeaService_Update_WhitespaceDescriptionFails(t *testing.T) {
	idea := ownedIdea("u1")
	svc, _, _ := newService(repoWith(idea))

	_, err := svc.Update(context.Background(), u1, idea.ID.String(), domain.IdeaPatch{Description: "   "})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestIdeaService_Update_WhitespaceTitleKeepsTitle(t *testing.T) {
	idea := ownedIdea("u1")
	svc, _, _ := newService(repoWith(idea))

	got, err := svc.Update(context.Background(), u1, idea.ID.String(), domain.IdeaPatch{Title: "   "})

	require.NoError(t, err)
	assert.Equal(t, "Robots", got.Title)
}

func TestIdeaService_Update_TitleTooLong(t *testing.T) {
	idea := ownedIdea("u1")
	svc, _, _ := newService(repoWith(idea))

	_, err := svc.Update(context.Background(), u1, idea.ID.String(), domain.IdeaPatch{
		Title: strings.Repeat("t", domain.MaxTitleLength+1),
	})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "title")
}

func TestIdeaService_Update_NonOwnerIsForbidden(t *testing.T) {
	idea := ownedIdea("u1")
	r := repoWith(idea)
	r.update = func(_ context.Context, _ domain.Idea) (domain.Idea, error) {
		t.Fatal("repo.Update must not be called for a non-owner")
		return domain.Idea{}, nil
	}
	svc, _, pub := newService(r)

	_, err := svc.Update(context.Background(), u2, idea.ID.String(), domain.IdeaPatch{Description: "x"})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, pub.events)
}

func TestIdeaService_Update_Unauthenticated(t *testing.T) {
	svc, _, _ := newService(&mockIdeaRepo{})

	_, err := svc.Update(context.Background(), nil, uuid.NewString(), domain.IdeaPatch{Description: "x"})

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestIdeaService_Update_NotFound(t *testing.T) {
	svc, _, _ := newService(repoWith(ownedIdea("u1")))

	_, err := svc.Update(context.Background(), u1, uuid.NewString(), domain.IdeaPatch{Description: "x"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Delete ----------------------------------------------------------------

func TestIdeaService_Delete_Owner(t *testing.T) {
	idea := ownedIdea("u1")
	var deleted uuid.UUID
	r := repoWith(idea)
	r.delete = func(_ context.Context, id uuid.UUID) error {
		deleted = id
		return nil
	}
	svc, _, pub := newService(r)

	err := svc.Delete(context.Background(), u1, idea.ID.String())

	require.NoError(t, err)
	assert.Equal(t, idea.ID, deleted)
	require.Len(t, pub.events, 1)
	assert.Equal(t, events.Deleted, pub.events[0].Type)
}

func TestIdeaService_Delete_NonOwnerIsForbidden(t *testing.T) {
	idea := ownedIdea("u1")
	svc, _, _ := newService(repoWith(idea))

	err := svc.Delete(context.Background(), u2, idea.ID.String())

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestIdeaService_Delete_Unauthenticated(t *testing.T) {
	svc, _, _ := newService(&mockIdeaRepo{})

	err := svc.Delete(context.Background(), nil, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestIdeaService_Delete_MalformedID(t *testing.T) {
	svc, _, _ := newService(&mockIdeaRepo{})

	err := svc.Delete(context.Background(), u1, "12345")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- ToggleLike ------------------------------------------------------------

func TestIdeaService_ToggleLike_Unauthenticated(t *testing.T) {
	svc, _, _ := newService(&mockIdeaRepo{})

	_, err := svc.ToggleLike(context.Background(), nil, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestIdeaService_ToggleLike_NotFound(t *testing.T) {
	r := &mockIdeaRepo{
		toggleLike: func(_ context.Context, _ uuid.UUID, _ string) (domain.Idea, error) {
			return domain.Idea{}, domain.ErrNotFound
		},
	}
	svc, _, _ := newService(r)

	_, err := svc.ToggleLike(context.Background(), u2, uuid.NewString())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIdeaService_ToggleLike_UsesPrincipalID(t *testing.T) {
	idea := ownedIdea("u1")
	var gotPrincipal string
	r := &mockIdeaRepo{
		toggleLike: func(_ context.Context, id uuid.UUID, principalID string) (domain.Idea, error) {
			gotPrincipal = principalID
			idea.Likes = []string{principalID}
			return idea, nil
		},
	}
	svc, _, pub := newService(r)

	got, err := svc.ToggleLike(context.Background(), u2, idea.ID.String())

	require.NoError(t, err)
	assert.Equal(t, "u2", gotPrincipal)
	assert.Equal(t, 1, got.LikeCount())
	require.Len(t, pub.events, 1)
	assert.Equal(t, events.Liked, pub.events[0].Type)
	assert.Equal(t, 1, pub.events[0].LikeCount)
}

// ---- end-to-end scenarios against the in-memory store ----------------------

func TestIdeaService_Scenario_ToggleTwiceUnlikes(t *testing.T) {
	svc, _, pub := newService(newMemIdeaRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, u1, domain.IdeaInput{Description: "Build a robot"})
	require.NoError(t, err)

	first, err := svc.ToggleLike(ctx, u2, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, first.LikeCount())
	assert.True(t, first.LikedBy("u2"))

	second, err := svc.ToggleLike(ctx, u2, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 0, second.LikeCount())
	assert.False(t, second.LikedBy("u2"))
	assert.Equal(t, events.Unliked, pub.events[len(pub.events)-1].Type)
}

func TestIdeaService_ToggleLike_ParityProperty(t *testing.T) {
	for n := 1; n <= 6; n++ {
		svc, _, _ := newService(newMemIdeaRepo())
		ctx := context.Background()

		created, err := svc.Create(ctx, u1, domain.IdeaInput{Description: "x"})
		require.NoError(t, err)

		var last domain.Idea
		for i := 0; i < n; i++ {
			last, err = svc.ToggleLike(ctx, u2, created.ID.String())
			require.NoError(t, err)
		}
		assert.Equal(t, n%2 == 1, last.LikedBy("u2"), "after %d toggles", n)
		assert.Equal(t, len(last.Likes), last.LikeCount())
	}
}

func TestIdeaService_ToggleLike_AuthorMayLikeOwnIdea(t *testing.T) {
	svc, _, _ := newService(newMemIdeaRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, u1, domain.IdeaInput{Description: "x"})
	require.NoError(t, err)

	got, err := svc.ToggleLike(ctx, u1, created.ID.String())

	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, got.Likes)
}

func TestIdeaService_Scenario_NonOwnerUpdateLeavesRecordUnchanged(t *testing.T) {
	svc, _, _ := newService(newMemIdeaRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, u1, domain.IdeaInput{Description: "Build a robot"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, u2, created.ID.String(), domain.IdeaPatch{Description: "x"})
	require.ErrorIs(t, err, domain.ErrForbidden)

	got, err := svc.GetByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Build a robot", got.Description)
}

func TestIdeaService_Scenario_DeleteThenGetIsNotFound(t *testing.T) {
	svc, _, _ := newService(newMemIdeaRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, u1, domain.IdeaInput{Description: "Build a robot"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, u1, created.ID.String()))

	_, err = svc.GetByID(ctx, created.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIdeaService_Scenario_CreateGetRoundTrip(t *testing.T) {
	svc, _, _ := newService(newMemIdeaRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, u1, domain.IdeaInput{
		Title:       " Robots ",
		Description: "Build a robot",
		Tags:        domain.TagInput{"hardware", " fun "},
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID.String())

	require.NoError(t, err)
	assert.Equal(t, "Robots", got.Title)
	assert.Equal(t, "Build a robot", got.Description)
	assert.Equal(t, []string{"hardware", "fun"}, got.Tags)
	assert.Equal(t, "u1", got.AuthorID)
	assert.Equal(t, "Ada", got.Author.DisplayName)
}
