package store

import (
	"errors"
	"testing"

	"github.com/blues/tfs/internal/model"
	"github.com/stretchr/testify/require"
)

// stubGateway 可控失败的内存网关
type stubGateway struct {
	saved    int
	failSave bool
}

func (g *stubGateway) Load() (*model.Snapshot, error) {
	return model.NewSnapshot(), nil
}

func (g *stubGateway) Save(snapshot *model.Snapshot) error {
	if g.failSave {
		return errors.New("disk full")
	}
	g.saved++
	return nil
}

func TestUpdatePersistsAfterMutation(t *testing.T) {
	gateway := &stubGateway{}
	st := New(gateway, false)
	require.NoError(t, st.Init())

	err := st.Update(func(snapshot *model.Snapshot) error {
		snapshot.Tokens = append(snapshot.Tokens, &model.Token{Id: "a"})
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, gateway.saved)

	st.View(func(snapshot *model.Snapshot) {
		require.Len(t, snapshot.Tokens, 1)
	})
}

func TestUpdateErrorSkipsPersist(t *testing.T) {
	gateway := &stubGateway{}
	st := New(gateway, false)
	require.NoError(t, st.Init())

	wantErr := errors.New("rejected")
	err := st.Update(func(snapshot *model.Snapshot) error {
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)
	require.Equal(t, 0, gateway.saved)
}

func TestUpdateBestEffortPersistence(t *testing.T) {
	gateway := &stubGateway{failSave: true}
	st := New(gateway, false)
	require.NoError(t, st.Init())

	// 默认策略：写快照失败只记日志，操作仍然成功，内存变更保留
	err := st.Update(func(snapshot *model.Snapshot) error {
		snapshot.Tokens = append(snapshot.Tokens, &model.Token{Id: "a"})
		return nil
	})
	require.NoError(t, err)

	st.View(func(snapshot *model.Snapshot) {
		require.Len(t, snapshot.Tokens, 1)
	})
}

func TestUpdateStrictPersistence(t *testing.T) {
	gateway := &stubGateway{failSave: true}
	st := New(gateway, true)
	require.NoError(t, st.Init())

	// strict 策略：写快照失败向调用方返回错误，内存变更同样保留
	err := st.Update(func(snapshot *model.Snapshot) error {
		snapshot.Tokens = append(snapshot.Tokens, &model.Token{Id: "a"})
		return nil
	})
	require.ErrorIs(t, err, ErrPersistence)

	st.View(func(snapshot *model.Snapshot) {
		require.Len(t, snapshot.Tokens, 1)
	})
}

func TestInitLoadsSnapshot(t *testing.T) {
	gateway := NewFileGateway(t.TempDir() + "/snapshot.json")

	first := New(gateway, false)
	require.NoError(t, first.Init())
	err := first.Update(func(snapshot *model.Snapshot) error {
		snapshot.Tokens = append(snapshot.Tokens, &model.Token{Id: "persisted"})
		return nil
	})
	require.NoError(t, err)

	// 新的存储实例启动时能读回上一次写入
	second := New(gateway, false)
	require.NoError(t, second.Init())
	second.View(func(snapshot *model.Snapshot) {
		require.Len(t, snapshot.Tokens, 1)
		require.Equal(t, "persisted", snapshot.Tokens[0].Id)
	})
}
