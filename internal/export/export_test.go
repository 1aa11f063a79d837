package export

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/board/internal/models"
	boardservice "github.com/thenoetrevino/board/internal/services/board"
	cardservice "github.com/thenoetrevino/board/internal/services/card"
	"github.com/thenoetrevino/board/internal/testutil"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = params
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

func setupExporter(t *testing.T) (*Exporter, int, cardservice.Service) {
	t.Helper()
	_, store := testutil.SetupTestStore(t)
	boards := boardservice.NewService(store)
	cards := cardservice.NewService(store, cardservice.WithUserFunc(func() string { return "tester" }))

	b, err := boards.CreateBoard(context.Background(), "Release")
	require.NoError(t, err)

	e := New(boards, cards)
	e.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return e, b.ID, cards
}

func TestSnapshotGroupsCardsByColumn(t *testing.T) {
	ctx := context.Background()
	e, boardID, cards := setupExporter(t)

	first, err := cards.CreateCard(ctx, boardID, "First", "")
	require.NoError(t, err)
	second, err := cards.CreateCard(ctx, boardID, "Second", "")
	require.NoError(t, err)
	_, err = cards.MoveCardToNext(ctx, second.ID)
	require.NoError(t, err)
	_, err = cards.BlockCard(ctx, first.ID, "waiting")
	require.NoError(t, err)

	snap, err := e.Snapshot(ctx, boardID)
	require.NoError(t, err)
	assert.Equal(t, "Release", snap.Board.Name)
	require.Len(t, snap.Columns, 4)

	assert.Equal(t, models.ColumnKindInitial, snap.Columns[0].Kind)
	require.Len(t, snap.Columns[0].Cards, 1)
	assert.Equal(t, first.ID, snap.Columns[0].Cards[0].ID)
	assert.True(t, snap.Columns[0].Cards[0].Blocked)

	require.Len(t, snap.Columns[1].Cards, 1)
	assert.Equal(t, second.ID, snap.Columns[1].Cards[0].ID)
	assert.NotNil(t, snap.Columns[2].Cards)
	assert.Empty(t, snap.Columns[2].Cards)
}

func TestSnapshotUnknownBoard(t *testing.T) {
	e, _, _ := setupExporter(t)
	_, err := e.Snapshot(context.Background(), 9999)
	assert.ErrorIs(t, err, boardservice.ErrBoardNotFound)
}

func TestExportToFile(t *testing.T) {
	ctx := context.Background()
	e, boardID, _ := setupExporter(t)
	path := filepath.Join(t.TempDir(), "nested", "board.json")

	location, err := e.Export(ctx, boardID, FileSink{Path: path})
	require.NoError(t, err)
	assert.Equal(t, path, location)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var snap Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Equal(t, boardID, snap.Board.ID)
	assert.Len(t, snap.Columns, 4)
	assert.True(t, snap.ExportedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))
}

func TestExportToS3(t *testing.T) {
	ctx := context.Background()
	e, boardID, _ := setupExporter(t)
	putter := &fakePutter{}

	location, err := e.Export(ctx, boardID, newS3Sink(putter, "exports", "/boards/1.json"))
	require.NoError(t, err)
	assert.Equal(t, "s3://exports/boards/1.json", location)
	require.NotNil(t, putter.input)
	assert.Equal(t, "exports", *putter.input.Bucket)
	assert.Equal(t, "boards/1.json", *putter.input.Key)
	assert.Equal(t, "application/json", *putter.input.ContentType)
	assert.Contains(t, string(putter.body), `"name": "Release"`)
}

func TestS3SinkErrors(t *testing.T) {
	ctx := context.Background()

	_, err := newS3Sink(&fakePutter{}, "exports", "").Put(ctx, []byte("{}"))
	assert.Error(t, err)

	missing := &fakePutter{err: &smithy.GenericAPIError{Code: "NoSuchBucket", Message: "gone"}}
	_, err = newS3Sink(missing, "exports", "a.json").Put(ctx, []byte("{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket exports does not exist")

	boom := errors.New("boom")
	_, err = newS3Sink(&fakePutter{err: boom}, "exports", "a.json").Put(ctx, []byte("{}"))
	assert.ErrorIs(t, err, boom)
}

func TestNewS3SinkRequiresBucket(t *testing.T) {
	_, err := NewS3Sink(context.Background(), testExportConfig(""), "a.json")
	assert.ErrorIs(t, err, ErrBucketRequired)
}

func TestDefaultKey(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	assert.Equal(t, "boards/7/20260304T050607Z.json", DefaultKey(7, at))
}
