package posts

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"Agora/internal/auth"
	"Agora/internal/core/comments"
	"Agora/internal/core/communities"
	"Agora/internal/core/contentpolicy"
	"Agora/internal/core/moderation"
	"Agora/internal/core/permissions"
	"Agora/internal/core/saves"
	"Agora/internal/core/users"
	"Agora/internal/core/votes"
)

// CommentPageSize is the number of comments returned with a single post
const CommentPageSize = 9999

type postService struct {
	repo        Repository
	votes       votes.Repository
	saves       saves.Repository
	modLog      moderation.Repository
	communities communities.Repository
	users       users.Repository
	comments    comments.Repository
	identity    auth.Resolver
	policy      *contentpolicy.Policy
	authz       *permissions.Engine
	logger      *slog.Logger
	now         func() time.Time
}

// Option configures a post service
type Option func(*postService)

// WithLogger sets the service logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *postService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the clock used to stamp edits
func WithClock(now func() time.Time) Option {
	return func(s *postService) {
		s.now = now
	}
}

// NewPostService creates a new post service
func NewPostService(
	repo Repository,
	voteRepo votes.Repository,
	saveRepo saves.Repository,
	modLog moderation.Repository,
	communityRepo communities.Repository,
	userRepo users.Repository,
	commentRepo comments.Repository,
	identity auth.Resolver,
	policy *contentpolicy.Policy,
	opts ...Option,
) Service {
	s := &postService{
		repo:        repo,
		votes:       voteRepo,
		saves:       saveRepo,
		modLog:      modLog,
		communities: communityRepo,
		users:       userRepo,
		comments:    commentRepo,
		identity:    identity,
		policy:      policy,
		authz:       permissions.NewEngine(communityRepo, communityRepo, userRepo),
		logger:      slog.Default(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePost creates a post and records the creator's upvote on it.
// A failed self-upvote is reported as ErrCouldntLikePost; the post stays.
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*PostResponse, error) {
	const op = OpCreatePost

	identity := s.identity.Resolve(ctx, req.Auth)
	if identity == nil {
		return nil, s.fail(op, ErrNotAuthenticated, nil)
	}

	name, body, err := s.policy.Clean(req.Name, req.Body)
	if err != nil {
		return nil, s.fail(op, ErrDisallowedContent, nil)
	}

	if err := s.authz.CheckBans(ctx, identity.UserID, req.CommunityID); err != nil {
		return nil, s.failAuthz(op, err, ErrCouldntCreatePost)
	}

	post, err := s.repo.Create(ctx, &PostForm{
		Name:        name,
		URL:         req.URL,
		Body:        body,
		CreatorID:   identity.UserID,
		CommunityID: req.CommunityID,
		NSFW:        req.NSFW,
	})
	if err != nil {
		return nil, s.fail(op, ErrCouldntCreatePost, err)
	}

	if err := s.votes.Replace(ctx, post.ID, identity.UserID, votes.Upvote); err != nil {
		return nil, s.fail(op, ErrCouldntLikePost, err)
	}

	s.logger.Info("post created", "post_id", post.ID, "creator_id", identity.UserID, "community_id", req.CommunityID)
	return s.respond(ctx, op, post.ID, identity.UserID)
}

// GetPost returns a post with its comments, community, moderators and admins
func (s *postService) GetPost(ctx context.Context, req GetPostRequest) (*GetPostResponse, error) {
	const op = OpGetPost

	viewerID := s.viewer(ctx, req.Auth)

	view, err := s.repo.GetView(ctx, req.ID, viewerID)
	if err != nil {
		return nil, s.failRead(op, err)
	}

	postComments, err := s.comments.ListForPost(ctx, view.ID, viewerID, CommentPageSize)
	if err != nil {
		return nil, s.fail(op, ErrCouldntFindPost, err)
	}

	community, err := s.communities.GetView(ctx, view.CommunityID, viewerID)
	if err != nil {
		return nil, s.fail(op, ErrCouldntFindPost, err)
	}

	moderators, err := s.communities.ListModerators(ctx, view.CommunityID)
	if err != nil {
		return nil, s.fail(op, ErrCouldntFindPost, err)
	}

	admins, err := s.users.ListAdmins(ctx)
	if err != nil {
		return nil, s.fail(op, ErrCouldntFindPost, err)
	}

	creatorID, err := s.users.GetSiteCreatorID(ctx)
	switch {
	case err == nil:
		admins = PromoteSiteCreator(admins, creatorID)
	case errors.Is(err, users.ErrSiteNotFound):
	default:
		return nil, s.fail(op, ErrCouldntFindPost, err)
	}

	return &GetPostResponse{
		Op:         op,
		Post:       view,
		Comments:   nonNil(postComments),
		Community:  community,
		Moderators: nonNil(moderators),
		Admins:     nonNil(admins),
	}, nil
}

// GetPosts lists posts. Anonymous viewers never see nsfw posts.
func (s *postService) GetPosts(ctx context.Context, req GetPostsRequest) (*GetPostsResponse, error) {
	const op = OpGetPosts

	var viewerID *int
	showNSFW := false
	if identity := s.identity.Resolve(ctx, req.Auth); identity != nil {
		viewerID = &identity.UserID
		showNSFW = identity.ShowNSFW
	}

	listingType, err := ParseListingType(req.Type)
	if err != nil {
		return nil, s.fail(op, ErrBadRequest, err)
	}

	sort, err := ParseSortType(req.Sort)
	if err != nil {
		return nil, s.fail(op, ErrBadRequest, err)
	}

	if listingType == ListingCommunity && req.CommunityID == nil {
		return nil, s.fail(op, ErrBadRequest, errors.New("community listing requires community_id"))
	}

	list, err := s.repo.List(ctx, ListFilter{
		Type:        listingType,
		Sort:        sort,
		CommunityID: req.CommunityID,
		ViewerID:    viewerID,
		ShowNSFW:    showNSFW,
		Page:        req.Page,
		Limit:       req.Limit,
	})
	if err != nil {
		return nil, s.fail(op, ErrCouldntGetPosts, err)
	}

	return &GetPostsResponse{Op: op, Posts: nonNil(list)}, nil
}

// CreatePostLike replaces the actor's vote on a post.
// Scores other than 1 and -1 clear the vote.
func (s *postService) CreatePostLike(ctx context.Context, req CreatePostLikeRequest) (*PostResponse, error) {
	const op = OpCreatePostLike

	identity := s.identity.Resolve(ctx, req.Auth)
	if identity == nil {
		return nil, s.fail(op, ErrNotAuthenticated, nil)
	}

	post, err := s.repo.GetByID(ctx, req.PostID)
	if err != nil {
		if IsNotFound(err) {
			return nil, s.fail(op, ErrNotFound, nil)
		}
		return nil, s.fail(op, ErrCouldntLikePost, err)
	}

	if err := s.authz.CheckBans(ctx, identity.UserID, post.CommunityID); err != nil {
		return nil, s.failAuthz(op, err, ErrCouldntLikePost)
	}

	if err := s.votes.Replace(ctx, post.ID, identity.UserID, req.Score); err != nil {
		return nil, s.fail(op, ErrCouldntLikePost, err)
	}

	return s.respond(ctx, op, post.ID, identity.UserID)
}

// EditPost applies a full edit to a post.
//
// Authority and bans are evaluated against the stored post's creator and
// community; the request's creator_id and community_id are not trusted and
// are never written. Supplied removed/locked flags are logged to the
// moderation log whether or not they change the stored value.
func (s *postService) EditPost(ctx context.Context, req EditPostRequest) (*PostResponse, error) {
	const op = OpEditPost

	name, body, err := s.policy.Clean(req.Name, req.Body)
	if err != nil {
		return nil, s.fail(op, ErrDisallowedContent, nil)
	}

	identity := s.identity.Resolve(ctx, req.Auth)
	if identity == nil {
		return nil, s.fail(op, ErrNotAuthenticated, nil)
	}

	stored, err := s.repo.GetByID(ctx, req.EditID)
	if err != nil {
		if IsNotFound(err) {
			return nil, s.fail(op, ErrNotFound, nil)
		}
		return nil, s.fail(op, ErrCouldntUpdatePost, err)
	}

	if err := s.authz.CheckEditAuthority(ctx, identity.UserID, stored.CreatorID, stored.CommunityID); err != nil {
		return nil, s.failAuthz(op, err, ErrCouldntUpdatePost)
	}

	if err := s.authz.CheckBans(ctx, identity.UserID, stored.CommunityID); err != nil {
		return nil, s.failAuthz(op, err, ErrCouldntUpdatePost)
	}

	flags := req.Flags()
	now := s.now()
	form := &PostForm{
		Name:        name,
		URL:         req.URL,
		Body:        body,
		CreatorID:   stored.CreatorID,
		CommunityID: stored.CommunityID,
		Removed:     flags.Removed.Apply(stored.Removed),
		Deleted:     flags.Deleted.Apply(stored.Deleted),
		Locked:      flags.Locked.Apply(stored.Locked),
		NSFW:        req.NSFW,
		Updated:     &now,
	}

	if _, err := s.repo.Update(ctx, stored.ID, form); err != nil {
		return nil, s.fail(op, ErrCouldntUpdatePost, err)
	}

	if flags.Removed.IsSet() {
		record := &moderation.RemovePostRecord{
			ModUserID: identity.UserID,
			PostID:    stored.ID,
			Removed:   flags.Removed.Value(),
			Reason:    req.Reason,
		}
		if err := s.modLog.RecordRemoval(ctx, record); err != nil {
			return nil, s.fail(op, ErrCouldntUpdatePost, err)
		}
	}

	if flags.Locked.IsSet() {
		record := &moderation.LockPostRecord{
			ModUserID: identity.UserID,
			PostID:    stored.ID,
			Locked:    flags.Locked.Value(),
		}
		if err := s.modLog.RecordLock(ctx, record); err != nil {
			return nil, s.fail(op, ErrCouldntUpdatePost, err)
		}
	}

	return s.respond(ctx, op, stored.ID, identity.UserID)
}

// SavePost saves or unsaves a post for the actor
func (s *postService) SavePost(ctx context.Context, req SavePostRequest) (*PostResponse, error) {
	const op = OpSavePost

	identity := s.identity.Resolve(ctx, req.Auth)
	if identity == nil {
		return nil, s.fail(op, ErrNotAuthenticated, nil)
	}

	if err := s.saves.Set(ctx, req.PostID, identity.UserID, req.Save); err != nil {
		if errors.Is(err, saves.ErrPostNotFound) {
			return nil, s.fail(op, ErrNotFound, nil)
		}
		return nil, s.fail(op, ErrCouldntSavePost, err)
	}

	return s.respond(ctx, op, req.PostID, identity.UserID)
}

// respond re-reads the canonical view after a mutation
func (s *postService) respond(ctx context.Context, op string, postID, viewerID int) (*PostResponse, error) {
	view, err := s.repo.GetView(ctx, postID, &viewerID)
	if err != nil {
		return nil, s.failRead(op, err)
	}
	return &PostResponse{Op: op, Post: view}, nil
}

// viewer resolves an optional token to a viewer id
func (s *postService) viewer(ctx context.Context, token string) *int {
	identity := s.identity.Resolve(ctx, token)
	if identity == nil {
		return nil
	}
	return &identity.UserID
}

func (s *postService) failRead(op string, err error) *Error {
	if IsNotFound(err) {
		return s.fail(op, ErrNotFound, nil)
	}
	return s.fail(op, ErrCouldntFindPost, err)
}

// failAuthz surfaces ban and edit-authority denials as their own kinds and
// any lookup failure behind them as fallback
func (s *postService) failAuthz(op string, err error, fallback error) *Error {
	for _, kind := range []error{ErrCommunityBanned, ErrSiteBanned, ErrEditNotAllowed} {
		if errors.Is(err, kind) {
			return s.fail(op, kind, nil)
		}
	}
	return s.fail(op, fallback, err)
}

func (s *postService) fail(op string, kind, cause error) *Error {
	e := NewError(op, kind, cause)
	if cause != nil && !IsBadRequest(kind) {
		s.logger.Error("post operation failed", "op", op, "code", e.Code(), "error", cause)
	} else {
		s.logger.Debug("post operation rejected", "op", op, "code", e.Code())
	}
	return e
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
