package posts

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"Agora/internal/auth"
	"Agora/internal/core/comments"
	"Agora/internal/core/communities"
	"Agora/internal/core/moderation"
	"Agora/internal/core/saves"
	"Agora/internal/core/users"
	"Agora/internal/core/votes"
)

type pair struct{ a, b int }

// memStore is an in-memory backing for every repository the service uses
type memStore struct {
	mu sync.Mutex

	posts    map[int]*Post
	nextPost int

	votes map[pair]int  // (post, user) -> score
	saved map[pair]bool // (post, user)

	removals []*moderation.RemovePostRecord
	locks    []*moderation.LockPostRecord

	users       map[int]*users.UserView
	admins      []int
	siteCreator int

	communities map[int]*communities.CommunityView
	moderators  map[int][]int
	bans        map[pair]bool // (user, community)
	comments    map[int][]*comments.CommentView
	showNSFW    map[int]bool // users whose tokens carry the nsfw preference

	failCreate error
	failUpdate error
	failList   error
	failSave   error
	failLog    error
	failView   error
}

func newMemStore() *memStore {
	return &memStore{
		posts:       map[int]*Post{},
		votes:       map[pair]int{},
		saved:       map[pair]bool{},
		users:       map[int]*users.UserView{},
		communities: map[int]*communities.CommunityView{},
		moderators:  map[int][]int{},
		bans:        map[pair]bool{},
		comments:    map[int][]*comments.CommentView{},
		showNSFW:    map[int]bool{},
	}
}

func (m *memStore) addUser(id int, name string) *users.UserView {
	u := &users.UserView{ID: id, Name: name}
	m.users[id] = u
	return u
}

func (m *memStore) addCommunity(id int, name string) {
	m.communities[id] = &communities.CommunityView{ID: id, Name: name, Title: name}
}

func (m *memStore) seedPost(p Post) *Post {
	m.nextPost++
	p.ID = m.nextPost
	if p.Published.IsZero() {
		p.Published = time.Now()
	}
	m.posts[p.ID] = &p
	return &p
}

func (m *memStore) voteRows(postID int) int {
	n := 0
	for k := range m.votes {
		if k.a == postID {
			n++
		}
	}
	return n
}

func (m *memStore) view(p *Post, viewerID *int) *PostView {
	v := &PostView{
		ID:            p.ID,
		Name:          p.Name,
		URL:           p.URL,
		Body:          p.Body,
		CreatorID:     p.CreatorID,
		CommunityID:   p.CommunityID,
		Removed:       p.Removed,
		Locked:        p.Locked,
		Deleted:       p.Deleted,
		NSFW:          p.NSFW,
		Published:     p.Published,
		Updated:       p.Updated,
		CreatorName:   m.users[p.CreatorID].Name,
		CommunityName: m.communities[p.CommunityID].Name,
	}
	for k, score := range m.votes {
		if k.a != p.ID {
			continue
		}
		v.Score += score
		if score > 0 {
			v.Upvotes++
		} else {
			v.Downvotes++
		}
		if viewerID != nil && k.b == *viewerID {
			v.MyVote = score
		}
	}
	if viewerID != nil {
		v.Saved = m.saved[pair{p.ID, *viewerID}]
	}
	v.NumberOfComments = len(m.comments[p.ID])
	return v
}

// memPosts implements Repository
type memPosts struct{ *memStore }

func (r memPosts) Create(_ context.Context, form *PostForm) (*Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate != nil {
		return nil, r.failCreate
	}
	return r.seedPost(Post{
		Name:        form.Name,
		URL:         form.URL,
		Body:        form.Body,
		CreatorID:   form.CreatorID,
		CommunityID: form.CommunityID,
		Removed:     form.Removed,
		Locked:      form.Locked,
		Deleted:     form.Deleted,
		NSFW:        form.NSFW,
	}), nil
}

func (r memPosts) GetByID(_ context.Context, id int) (*Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r memPosts) Update(_ context.Context, id int, form *PostForm) (*Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failUpdate != nil {
		return nil, r.failUpdate
	}
	p, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	p.Name, p.URL, p.Body = form.Name, form.URL, form.Body
	p.CreatorID, p.CommunityID = form.CreatorID, form.CommunityID
	p.Removed, p.Locked, p.Deleted, p.NSFW = form.Removed, form.Locked, form.Deleted, form.NSFW
	p.Updated = form.Updated
	cp := *p
	return &cp, nil
}

func (r memPosts) GetView(_ context.Context, id int, viewerID *int) (*PostView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failView != nil {
		return nil, r.failView
	}
	p, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r.view(p, viewerID), nil
}

func (r memPosts) List(_ context.Context, filter ListFilter) ([]*PostView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failList != nil {
		return nil, r.failList
	}
	var out []*PostView
	for _, p := range r.posts {
		if p.Removed || p.Deleted || (p.NSFW && !filter.ShowNSFW) {
			continue
		}
		if filter.Type == ListingCommunity && p.CommunityID != *filter.CommunityID {
			continue
		}
		out = append(out, r.view(p, filter.ViewerID))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// memVotes implements votes.Repository
type memVotes struct{ *memStore }

func (r memVotes) Replace(_ context.Context, postID, userID, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[postID]; !ok {
		return votes.ErrPostNotFound
	}
	if votes.Persistable(score) {
		r.votes[pair{postID, userID}] = score
	} else {
		delete(r.votes, pair{postID, userID})
	}
	return nil
}

func (r memVotes) Get(_ context.Context, postID, userID int) (*votes.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	score, ok := r.votes[pair{postID, userID}]
	if !ok {
		return nil, votes.ErrVoteNotFound
	}
	return &votes.Vote{PostID: postID, UserID: userID, Score: score}, nil
}

// memSaves implements saves.Repository
type memSaves struct{ *memStore }

func (r memSaves) Set(_ context.Context, postID, userID int, saved bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failSave != nil {
		return r.failSave
	}
	if _, ok := r.posts[postID]; !ok {
		return saves.ErrPostNotFound
	}
	if saved {
		r.saved[pair{postID, userID}] = true
	} else {
		delete(r.saved, pair{postID, userID})
	}
	return nil
}

// memModLog implements moderation.Repository
type memModLog struct{ *memStore }

func (r memModLog) RecordRemoval(_ context.Context, record *moderation.RemovePostRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failLog != nil {
		return r.failLog
	}
	record.ID = len(r.removals) + 1
	record.When = time.Now()
	r.removals = append(r.removals, record)
	return nil
}

func (r memModLog) RecordLock(_ context.Context, record *moderation.LockPostRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failLog != nil {
		return r.failLog
	}
	record.ID = len(r.locks) + 1
	record.When = time.Now()
	r.locks = append(r.locks, record)
	return nil
}

func (r memModLog) ListForPost(context.Context, int) ([]*moderation.Entry, error) {
	return nil, nil
}

// memCommunities implements communities.Repository
type memCommunities struct{ *memStore }

func (r memCommunities) GetView(_ context.Context, id int, _ *int) (*communities.CommunityView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.communities[id]
	if !ok {
		return nil, communities.ErrCommunityNotFound
	}
	return c, nil
}

func (r memCommunities) ListModerators(_ context.Context, communityID int) ([]*communities.ModeratorView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*communities.ModeratorView
	for _, id := range r.moderators[communityID] {
		out = append(out, &communities.ModeratorView{CommunityID: communityID, UserID: id, UserName: r.users[id].Name})
	}
	return out, nil
}

func (r memCommunities) IsBanned(_ context.Context, userID, communityID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bans[pair{userID, communityID}], nil
}

// memUsers implements users.Repository
type memUsers struct{ *memStore }

func (r memUsers) GetView(_ context.Context, id int) (*users.UserView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return u, nil
}

func (r memUsers) ListAdmins(context.Context) ([]*users.UserView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*users.UserView
	for _, id := range r.admins {
		out = append(out, r.users[id])
	}
	return out, nil
}

func (r memUsers) GetSiteCreatorID(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.siteCreator == 0 {
		return 0, users.ErrSiteNotFound
	}
	return r.siteCreator, nil
}

// memComments implements comments.Repository
type memComments struct{ *memStore }

func (r memComments) ListForPost(_ context.Context, postID int, _ *int, limit int) ([]*comments.CommentView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.comments[postID]
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// tokenFor returns the token the test resolver maps to user id
func tokenFor(id int) string {
	return fmt.Sprintf("token-%d", id)
}

// testResolver resolves "token-<id>" for every known user
func testResolver(m *memStore) auth.Resolver {
	return auth.ResolverFunc(func(_ context.Context, token string) *auth.Identity {
		m.mu.Lock()
		defer m.mu.Unlock()
		for id, u := range m.users {
			if token == tokenFor(id) {
				return &auth.Identity{UserID: id, Username: u.Name, ShowNSFW: m.showNSFW[id]}
			}
		}
		return nil
	})
}
