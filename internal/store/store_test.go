package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (r testRecord) EntityID() int64 { return r.ID }

func (r testRecord) WithEntityID(id int64) testRecord {
	r.ID = id
	return r
}

type fakeDoer struct {
	listOut   string
	listErr   error
	createID  int64
	createErr error
	updateErr error
	deleteErr error

	calls []string
}

func (d *fakeDoer) List(_ context.Context, path string, out interface{}) error {
	d.calls = append(d.calls, "LIST "+path)
	if d.listErr != nil {
		return d.listErr
	}
	if d.listOut == "" {
		return nil
	}
	return json.Unmarshal([]byte(d.listOut), out)
}

func (d *fakeDoer) Create(_ context.Context, path string, _ interface{}) (int64, error) {
	d.calls = append(d.calls, "CREATE "+path)
	return d.createID, d.createErr
}

func (d *fakeDoer) Update(_ context.Context, path string, id int64, _ interface{}) error {
	d.calls = append(d.calls, fmt.Sprintf("UPDATE %s/%d", path, id))
	return d.updateErr
}

func (d *fakeDoer) Delete(_ context.Context, path string, id int64) error {
	d.calls = append(d.calls, fmt.Sprintf("DELETE %s/%d", path, id))
	return d.deleteErr
}

type memKV struct {
	data   map[string][]byte
	getErr error
	putErr error
	puts   int
}

func newMemKV() *memKV {
	return &memKV{data: map[string][]byte{}}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	raw, ok := m.data[key]
	return raw, ok, nil
}

func (m *memKV) Put(_ context.Context, key string, value []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func TestRemoteListUnmarshalsCollection(t *testing.T) {
	doer := &fakeDoer{listOut: `[{"id":1,"name":"Physics Lab"},{"id":2,"name":"Room 201"}]`}
	resource := NewRemoteResource[testRecord](doer, "/api/rooms")

	records, err := resource.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].ID)
	assert.Equal(t, "Room 201", records[1].Name)
	assert.Equal(t, []string{"LIST /api/rooms"}, doer.calls)
}

func TestRemoteListNeverReturnsNilSlice(t *testing.T) {
	resource := NewRemoteResource[testRecord](&fakeDoer{}, "/api/rooms")

	records, err := resource.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestRemoteCreateAdoptsAssignedID(t *testing.T) {
	doer := &fakeDoer{createID: 42}
	resource := NewRemoteResource[testRecord](doer, "/api/faculty")

	created, err := resource.Create(context.Background(), testRecord{Name: "Dr. Sarah Johnson"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "Dr. Sarah Johnson", created.Name)
}

func TestRemoteCreateErrorReturnsZeroRecord(t *testing.T) {
	doer := &fakeDoer{createErr: errors.New("boom")}
	resource := NewRemoteResource[testRecord](doer, "/api/faculty")

	created, err := resource.Create(context.Background(), testRecord{Name: "Dr. Sarah Johnson"})
	assert.Error(t, err)
	assert.Zero(t, created)
}

func TestRemoteUpdateTargetsRecordID(t *testing.T) {
	doer := &fakeDoer{}
	resource := NewRemoteResource[testRecord](doer, "/api/faculty")

	updated, err := resource.Update(context.Background(), testRecord{ID: 7, Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.ID)
	assert.Equal(t, []string{"UPDATE /api/faculty/7"}, doer.calls)
}

func TestRemoteDeleteDelegates(t *testing.T) {
	doer := &fakeDoer{}
	resource := NewRemoteResource[testRecord](doer, "/api/subjects")

	require.NoError(t, resource.Delete(context.Background(), 9))
	assert.Equal(t, []string{"DELETE /api/subjects/9"}, doer.calls)
}

func newLocalCollection(kv KV) *LocalCollection[testRecord] {
	return NewLocalCollection[testRecord](kv, "timetable:test", NewIDGenerator(), nil)
}

func TestLocalCreateAssignsIncreasingIDs(t *testing.T) {
	kv := newMemKV()
	collection := newLocalCollection(kv)

	first, err := collection.Create(context.Background(), testRecord{Name: "first"})
	require.NoError(t, err)
	second, err := collection.Create(context.Background(), testRecord{Name: "second"})
	require.NoError(t, err)

	assert.Greater(t, first.ID, int64(0))
	assert.Greater(t, second.ID, first.ID)

	records, err := collection.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLocalListMissingKeyReadsEmpty(t *testing.T) {
	records, err := newLocalCollection(newMemKV()).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestLocalListCorruptDocumentReadsEmpty(t *testing.T) {
	kv := newMemKV()
	kv.data["timetable:test"] = []byte(`{definitely not an array`)

	records, err := newLocalCollection(kv).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLocalListReadFailureReadsEmpty(t *testing.T) {
	kv := newMemKV()
	kv.getErr = errors.New("disk gone")

	records, err := newLocalCollection(kv).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLocalUpdateMissingRecordIsNotFound(t *testing.T) {
	_, err := newLocalCollection(newMemKV()).Update(context.Background(), testRecord{ID: 404, Name: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalUpdateRewritesMatchingRecord(t *testing.T) {
	kv := newMemKV()
	collection := newLocalCollection(kv)

	created, err := collection.Create(context.Background(), testRecord{Name: "before"})
	require.NoError(t, err)

	updated, err := collection.Update(context.Background(), testRecord{ID: created.ID, Name: "after"})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Name)

	records, err := collection.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "after", records[0].Name)
}

func TestLocalDeleteRemovesRecord(t *testing.T) {
	kv := newMemKV()
	collection := newLocalCollection(kv)

	created, err := collection.Create(context.Background(), testRecord{Name: "doomed"})
	require.NoError(t, err)

	require.NoError(t, collection.Delete(context.Background(), created.ID))

	records, err := collection.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLocalDeleteAbsentIDIsNoOp(t *testing.T) {
	kv := newMemKV()
	collection := newLocalCollection(kv)

	_, err := collection.Create(context.Background(), testRecord{Name: "kept"})
	require.NoError(t, err)
	writesBefore := kv.puts

	require.NoError(t, collection.Delete(context.Background(), 123456789))
	assert.Equal(t, writesBefore, kv.puts, "no-op delete must not rewrite the document")

	records, err := collection.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestLocalCreatePersistFailurePropagates(t *testing.T) {
	kv := newMemKV()
	kv.putErr = errors.New("readonly filesystem")

	created, err := newLocalCollection(kv).Create(context.Background(), testRecord{Name: "lost"})
	assert.Error(t, err)
	assert.Zero(t, created)
}
