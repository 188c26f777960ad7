package logic

import (
	"path/filepath"
	"testing"

	"github.com/blues/tfs/internal/model"
	"github.com/blues/tfs/internal/store"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	gateway := store.NewFileGateway(filepath.Join(t.TempDir(), "snapshot.json"))
	st := store.New(gateway, false)
	require.NoError(t, st.Init())
	return st
}

func newTestToken(ticker string) *model.Token {
	return &model.Token{
		Title:       "Test Token " + ticker,
		Ticker:      ticker,
		Description: "a test token",
		ImageURL:    "https://example.com/image.png",
	}
}

func TestCreateTokenDefaults(t *testing.T) {
	l := NewTokenLogic(newTestStore(t))

	token := newTestToken("TTA")
	require.NoError(t, l.CreateToken(token))

	require.NotEmpty(t, token.Id)
	require.Equal(t, DefaultTargetAmount, token.TargetAmount)
	require.Equal(t, 0.0, token.PledgedAmount)
	require.Empty(t, token.Pledges)
	require.Empty(t, token.Upvoters)
	require.Empty(t, token.Comments)
	require.False(t, token.Migrated)
}

func TestCreateTokenDetachesCallerPointer(t *testing.T) {
	l := NewTokenLogic(newTestStore(t))

	token := newTestToken("DET")
	require.NoError(t, l.CreateToken(token))

	// 创建后改写调用方持有的对象，账本不受影响
	token.Title = "tampered"
	token.PledgedAmount = 99

	got, err := l.GetToken(token.Id)
	require.NoError(t, err)
	require.Equal(t, "Test Token DET", got.Title)
	require.Equal(t, 0.0, got.PledgedAmount)
}

func TestCreateTokenValidation(t *testing.T) {
	l := NewTokenLogic(newTestStore(t))

	tests := []struct {
		name   string
		mutate func(token *model.Token)
	}{
		{"missing title", func(token *model.Token) { token.Title = "" }},
		{"missing ticker", func(token *model.Token) { token.Ticker = "" }},
		{"missing description", func(token *model.Token) { token.Description = "" }},
		{"missing image", func(token *model.Token) { token.ImageURL = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := newTestToken("TTB")
			tt.mutate(token)

			err := l.CreateToken(token)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateTokenDuplicateTickerCaseInsensitive(t *testing.T) {
	l := NewTokenLogic(newTestStore(t))

	require.NoError(t, l.CreateToken(newTestToken("ABC")))

	err := l.CreateToken(newTestToken("abc"))
	require.ErrorIs(t, err, ErrDuplicateTicker)

	// 失败的创建不留痕迹
	require.Len(t, l.GetTokens(), 1)
}

func TestUpvoteOncePerWallet(t *testing.T) {
	l := NewTokenLogic(newTestStore(t))

	token := newTestToken("UPV")
	require.NoError(t, l.CreateToken(token))

	updated, err := l.Upvote(token.Id, "wallet-1")
	require.NoError(t, err)
	require.Equal(t, 1, updated.UpvoteCount)
	require.Equal(t, []string{"wallet-1"}, updated.Upvoters)

	_, err = l.Upvote(token.Id, "wallet-1")
	require.ErrorIs(t, err, ErrAlreadyUpvoted)

	updated, err = l.Upvote(token.Id, "wallet-2")
	require.NoError(t, err)
	require.Equal(t, 2, updated.UpvoteCount)
	require.Len(t, updated.Upvoters, updated.UpvoteCount)
}

func TestUpvoteUnknownToken(t *testing.T) {
	l := NewTokenLogic(newTestStore(t))

	_, err := l.Upvote("no-such-token", "wallet-1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAddComment(t *testing.T) {
	l := NewTokenLogic(newTestStore(t))

	token := newTestToken("CMT")
	require.NoError(t, l.CreateToken(token))

	first, err := l.AddComment(token.Id, "alice", "first!")
	require.NoError(t, err)
	require.NotEmpty(t, first.Id)
	require.Empty(t, first.Replies)

	_, err = l.AddComment(token.Id, "bob", "second")
	require.NoError(t, err)

	comments, err := l.GetComments(token.Id)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, "alice", comments[0].Author)
	require.Equal(t, "bob", comments[1].Author)
}

func TestAddCommentValidation(t *testing.T) {
	l := NewTokenLogic(newTestStore(t))

	token := newTestToken("CMV")
	require.NoError(t, l.CreateToken(token))

	_, err := l.AddComment(token.Id, "", "text")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = l.AddComment(token.Id, "alice", "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = l.AddComment("no-such-token", "alice", "text")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetTokenIncrementsViewCount(t *testing.T) {
	l := NewTokenLogic(newTestStore(t))

	token := newTestToken("VWS")
	require.NoError(t, l.CreateToken(token))

	got, err := l.GetToken(token.Id)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.ViewCount)

	got, err = l.GetToken(token.Id)
	require.NoError(t, err)
	require.Equal(t, int64(2), got.ViewCount)

	_, err = l.GetToken("no-such-token")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTrendingRanking(t *testing.T) {
	l := NewTokenLogic(newTestStore(t))

	// 6个代币，点赞数 [5,3,5,1,0,2]，并列按创建顺序排序
	upvotes := []int{5, 3, 5, 1, 0, 2}
	tickers := []string{"TK0", "TK1", "TK2", "TK3", "TK4", "TK5"}
	for i, ticker := range tickers {
		token := newTestToken(ticker)
		require.NoError(t, l.CreateToken(token))
		for v := 0; v < upvotes[i]; v++ {
			_, err := l.Upvote(token.Id, ticker+"-voter-"+string(rune('a'+v)))
			require.NoError(t, err)
		}
	}

	trending := l.GetTrending(0)
	require.Len(t, trending, DefaultTrendingLimit)

	var got []string
	for _, token := range trending {
		got = append(got, token.Ticker)
	}
	require.Equal(t, []string{"TK0", "TK2", "TK1", "TK5", "TK3"}, got)
}

func TestTrendingDoesNotMutateOrder(t *testing.T) {
	l := NewTokenLogic(newTestStore(t))

	a := newTestToken("AAA")
	b := newTestToken("BBB")
	require.NoError(t, l.CreateToken(a))
	require.NoError(t, l.CreateToken(b))
	_, err := l.Upvote(b.Id, "wallet-1")
	require.NoError(t, err)

	trending := l.GetTrending(5)
	require.Equal(t, "BBB", trending[0].Ticker)

	// 原始列表保持插入顺序
	tokens := l.GetTokens()
	require.Equal(t, "AAA", tokens[0].Ticker)
	require.Equal(t, "BBB", tokens[1].Ticker)
}

func TestGetAllTokenStats(t *testing.T) {
	st := newTestStore(t)
	l := NewTokenLogic(st)
	p := NewPledgeLogic(st)

	a := newTestToken("STA")
	b := newTestToken("STB")
	require.NoError(t, l.CreateToken(a))
	require.NoError(t, l.CreateToken(b))

	_, err := l.Upvote(a.Id, "wallet-1")
	require.NoError(t, err)
	_, err = p.Commit(b.Id, "wallet-1", 20)
	require.NoError(t, err)

	stats := l.GetAllTokenStats()
	require.Equal(t, 2, stats["totalTokens"])
	require.Equal(t, 1, stats["migratedTokens"])
	require.Equal(t, 1, stats["totalUpvotes"])
	require.Equal(t, 20.0, stats["totalPledged"])
}
