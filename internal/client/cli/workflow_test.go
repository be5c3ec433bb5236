package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/ipfsuploader/internal/client/models"
	"github.com/dmitrijs2005/ipfsuploader/internal/client/services"
	"github.com/dmitrijs2005/ipfsuploader/internal/logging"
)

type fakeClient struct {
	cid     string
	records []models.NamingRecord
	created models.NamingRecord

	addErr     error
	listErr    error
	publishErr error

	added     []models.IPFSFile
	creates   int
	lists     int
	published [][2]string
}

func (f *fakeClient) Add(ctx context.Context, file models.IPFSFile) (*models.UploadResult, error) {
	f.added = append(f.added, file)
	if f.addErr != nil {
		return nil, f.addErr
	}
	return &models.UploadResult{CID: f.cid}, nil
}

func (f *fakeClient) CreateRecord(ctx context.Context) (*models.NamingRecord, error) {
	f.creates++
	rec := f.created
	return &rec, nil
}

func (f *fakeClient) ListRecords(ctx context.Context) ([]models.NamingRecord, error) {
	f.lists++
	return f.records, f.listErr
}

func (f *fakeClient) PublishRecord(ctx context.Context, id string, hash string) (*models.PublishResult, error) {
	f.published = append(f.published, [2]string{id, hash})
	if f.publishErr != nil {
		return nil, f.publishErr
	}
	return &models.PublishResult{Hash: "/ipfs/" + hash}, nil
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) networkCalls() int {
	return len(f.added) + f.creates + f.lists + len(f.published)
}

// withTestFile switches into a temp dir holding ./test.txt.
func withTestFile(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.txt"), []byte("hello ipfs"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func noColor(t *testing.T) {
	t.Helper()
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })
}

func newTestApp(fc *fakeClient, input string) (*App, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	logger := logging.NewDiscardLogger()
	return &App{
		config:        testConfig(),
		client:        fc,
		logger:        logger,
		uploadService: services.NewUploadService(fc, logger),
		namingService: services.NewNamingService(fc, logger),
		prompter:      newLinePrompter(strings.NewReader(input), &out),
		out:           &out,
		errOut:        &errOut,
	}, &out, &errOut
}

func TestApp_DeclineNaming(t *testing.T) {
	noColor(t)
	withTestFile(t)

	fc := &fakeClient{cid: "bafy123"}
	app, out, _ := newTestApp(fc, "./test.txt\nn\n")

	require.Equal(t, 0, app.Run(context.Background()))

	got := out.String()
	assert.Contains(t, got, "https://ipfs.io/ipfs/bafy123")
	assert.NotContains(t, got, "ipns")
	assert.Zero(t, fc.lists)
	assert.Zero(t, fc.creates)
	assert.Empty(t, fc.published)

	require.Len(t, fc.added, 1)
	assert.Equal(t, "./test.txt", fc.added[0].Path)
	assert.Equal(t, []byte("hello ipfs"), fc.added[0].Content)
}

func TestApp_ShowsCIDBeforeNextPrompt(t *testing.T) {
	noColor(t)
	withTestFile(t)

	app, out, _ := newTestApp(&fakeClient{cid: "bafyX"}, "./test.txt\nn\n")
	require.Equal(t, 0, app.Run(context.Background()))

	got := out.String()
	cidAt := strings.Index(got, "The CID is => bafyX")
	promptAt := strings.Index(got, "Do you want to update an IPNS record")
	require.NotEqual(t, -1, cidAt)
	require.NotEqual(t, -1, promptAt)
	assert.Less(t, cidAt, promptAt)
}

func TestApp_MissingFileIsRevalidated(t *testing.T) {
	noColor(t)
	withTestFile(t)

	fc := &fakeClient{cid: "bafy123"}
	app, out, _ := newTestApp(fc, "./missing.txt\n./test.txt\nn\n")
	require.Equal(t, 0, app.Run(context.Background()))

	assert.Contains(t, out.String(), "Whoops! ./missing.txt doesn't exist!")
	require.Len(t, fc.added, 1)
	assert.Equal(t, "./test.txt", fc.added[0].Path)
}

func TestApp_EmptyListCreatesAndPublishes(t *testing.T) {
	noColor(t)
	withTestFile(t)

	fc := &fakeClient{
		cid:     "bafy123",
		created: models.NamingRecord{ID: "ipns-new", Name: "k51new"},
	}
	app, out, _ := newTestApp(fc, "./test.txt\ny\ny\n")
	require.Equal(t, 0, app.Run(context.Background()))

	assert.Equal(t, 1, fc.creates)
	assert.Equal(t, [][2]string{{"ipns-new", "bafy123"}}, fc.published)

	got := out.String()
	assert.Contains(t, got, "IPNS record created! The ID is => ipns-new")
	assert.Contains(t, got, "https://ipfs.io/ipfs/bafy123")
	assert.Contains(t, got, "https://ipfs.io/ipns/k51new")
	assert.Less(t, strings.Index(got, "IPNS record updated!"), strings.Index(got, "You can find your file at:"))
}

func TestApp_EmptyListDeclined(t *testing.T) {
	noColor(t)
	withTestFile(t)

	fc := &fakeClient{cid: "bafy123"}
	app, out, _ := newTestApp(fc, "./test.txt\ny\nn\n")
	require.Equal(t, 0, app.Run(context.Background()))

	assert.Zero(t, fc.creates)
	assert.Empty(t, fc.published)
	assert.Contains(t, out.String(), "https://ipfs.io/ipfs/bafy123")
	assert.NotContains(t, out.String(), "/ipns/")
}

func TestApp_SelectExistingPublishesOnce(t *testing.T) {
	noColor(t)
	withTestFile(t)

	fc := &fakeClient{
		cid: "bafy123",
		records: []models.NamingRecord{
			{ID: "rec-a", Name: "k51a"},
			{ID: "rec-b", Name: "k51b"},
			{ID: "rec-c", Name: "k51c"},
		},
	}
	app, out, _ := newTestApp(fc, "./test.txt\ny\n2\n")
	require.Equal(t, 0, app.Run(context.Background()))

	got := out.String()
	for i, id := range []string{"rec-a", "rec-b", "rec-c"} {
		assert.Contains(t, got, string(rune('1'+i))+") "+id)
	}
	assert.NotContains(t, got, "4) ")

	assert.Zero(t, fc.creates)
	assert.Equal(t, [][2]string{{"rec-b", "bafy123"}}, fc.published)
	assert.Contains(t, got, "https://ipfs.io/ipns/k51b")
}

func TestApp_Cancellation(t *testing.T) {
	records := []models.NamingRecord{{ID: "rec-a", Name: "k51a"}}

	tests := []struct {
		name      string
		input     string
		records   []models.NamingRecord
		wantCalls int
		wantOut   []string
		notOut    []string
	}{
		{
			name:      "file prompt exits silently",
			input:     "",
			wantCalls: 0,
			notOut:    []string{cancelMessage, "You can find your file at:"},
		},
		{
			name:      "file prompt after a rejected path",
			input:     "./missing.txt\n",
			wantCalls: 0,
			wantOut:   []string{"doesn't exist"},
			notOut:    []string{cancelMessage},
		},
		{
			name:      "naming decision prints banner",
			input:     "./test.txt\n",
			wantCalls: 1,
			wantOut:   []string{cancelMessage},
			notOut:    []string{"You can find your file at:"},
		},
		{
			name:      "create confirmation prints content summary",
			input:     "./test.txt\ny\n",
			wantCalls: 2,
			wantOut:   []string{"https://ipfs.io/ipfs/bafy123"},
			notOut:    []string{"/ipns/", cancelMessage},
		},
		{
			name:      "record selection prints banner",
			input:     "./test.txt\ny\n",
			records:   records,
			wantCalls: 2,
			wantOut:   []string{cancelMessage},
			notOut:    []string{"You can find your file at:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noColor(t)
			withTestFile(t)

			fc := &fakeClient{cid: "bafy123", records: tt.records}
			app, out, errOut := newTestApp(fc, tt.input)

			require.Equal(t, 0, app.Run(context.Background()))
			assert.Equal(t, tt.wantCalls, fc.networkCalls(), "no network call after cancellation")
			assert.Empty(t, errOut.String())
			for _, s := range tt.wantOut {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range tt.notOut {
				assert.NotContains(t, out.String(), s)
			}
		})
	}
}

func TestApp_CancelledContext(t *testing.T) {
	noColor(t)
	withTestFile(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fc := &fakeClient{cid: "bafy123"}
	app, _, _ := newTestApp(fc, "./test.txt\nn\n")

	assert.Equal(t, 0, app.Run(ctx))
	assert.Zero(t, fc.networkCalls())
}

func TestApp_Failures(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name  string
		input string
		fc    *fakeClient
	}{
		{"upload", "./test.txt\n", &fakeClient{addErr: boom}},
		{"empty cid", "./test.txt\n", &fakeClient{}},
		{"list", "./test.txt\ny\n", &fakeClient{cid: "bafy123", listErr: boom}},
		{
			"publish", "./test.txt\ny\n1\n",
			&fakeClient{cid: "bafy123", records: []models.NamingRecord{{ID: "a", Name: "k"}}, publishErr: boom},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			noColor(t)
			withTestFile(t)

			app, out, errOut := newTestApp(tt.fc, tt.input)
			assert.Equal(t, 1, app.Run(context.Background()))
			assert.True(t, strings.HasPrefix(errOut.String(), "error: "), errOut.String())
			assert.NotContains(t, out.String(), "You can find your file at:")
		})
	}
}

func TestWorkflow_Trace(t *testing.T) {
	noColor(t)
	withTestFile(t)

	fc := &fakeClient{cid: "bafy123", records: []models.NamingRecord{{ID: "a", Name: "k"}}}
	logger := logging.NewDiscardLogger()
	var out bytes.Buffer

	wf := &workflow{
		prompter: newLinePrompter(strings.NewReader("./test.txt\ny\n1\n"), &out),
		uploads:  services.NewUploadService(fc, logger),
		naming:   services.NewNamingService(fc, logger),
		status:   newStatusLine(&out, false),
		out:      &out,
		gateway:  "https://gw.example/",
		logger:   logger,
	}
	require.NoError(t, wf.run(context.Background()))

	want := []state{stateSelectFile, stateUpload, stateDecideNaming, stateListRecords, stateSelectExisting, statePublish, stateDone}
	if diff := cmp.Diff(want, wf.trace); diff != "" {
		t.Fatalf("trace mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, out.String(), "https://gw.example/ipns/k")
	assert.Equal(t, "/ipfs/bafy123", wf.published.Hash)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "EMPTY_CREATE_PUBLISH", stateEmptyCreatePublish.String())
	assert.Equal(t, "state(42)", state(42).String())
}
