package services

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taxdocs-api/config"
	domainDoc "taxdocs-api/internal/domain/document"
	domainUser "taxdocs-api/internal/domain/user"
	"taxdocs-api/internal/infrastructure/mq"
	"taxdocs-api/internal/infrastructure/storage"
)

const testEmail = "jane.doe@example.com"

type fakeDocumentRepo struct {
	FetchDocumentsFunc    func(ctx context.Context, userID domainUser.ID, category *domainDoc.Category, taxYear *int, page int) (domainDoc.Documents, error)
	FetchDocumentByIDFunc func(ctx context.Context, userID domainUser.ID, docUUID uuid.UUID) (*domainDoc.Document, error)
	CreateDocumentFunc    func(ctx context.Context, userID domainUser.ID, req *domainDoc.Document) (*domainDoc.Document, error)
	UpdateDocumentFunc    func(ctx context.Context, userID domainUser.ID, req *domainDoc.Document) (*domainDoc.Document, error)
	DeleteDocumentFunc    func(ctx context.Context, userID domainUser.ID, docUUID uuid.UUID) (*domainDoc.Document, error)
	DeleteDocumentsFunc   func(ctx context.Context, userID domainUser.ID) error
}

func (f *fakeDocumentRepo) FetchDocuments(ctx context.Context, userID domainUser.ID, category *domainDoc.Category, taxYear *int, page int) (domainDoc.Documents, error) {
	if f.FetchDocumentsFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchDocumentsFunc(ctx, userID, category, taxYear, page)
}
func (f *fakeDocumentRepo) FetchDocumentByID(ctx context.Context, userID domainUser.ID, docUUID uuid.UUID) (*domainDoc.Document, error) {
	if f.FetchDocumentByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchDocumentByIDFunc(ctx, userID, docUUID)
}
func (f *fakeDocumentRepo) CreateDocument(ctx context.Context, userID domainUser.ID, req *domainDoc.Document) (*domainDoc.Document, error) {
	if f.CreateDocumentFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateDocumentFunc(ctx, userID, req)
}
func (f *fakeDocumentRepo) UpdateDocument(ctx context.Context, userID domainUser.ID, req *domainDoc.Document) (*domainDoc.Document, error) {
	if f.UpdateDocumentFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpdateDocumentFunc(ctx, userID, req)
}
func (f *fakeDocumentRepo) DeleteDocument(ctx context.Context, userID domainUser.ID, docUUID uuid.UUID) (*domainDoc.Document, error) {
	if f.DeleteDocumentFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteDocumentFunc(ctx, userID, docUUID)
}
func (f *fakeDocumentRepo) DeleteDocuments(ctx context.Context, userID domainUser.ID) error {
	if f.DeleteDocumentsFunc == nil {
		return errors.New("not used")
	}
	return f.DeleteDocumentsFunc(ctx, userID)
}

type fakeUserRepo struct {
	FetchUserByIDFunc    func(ctx context.Context, uuid domainUser.UUID) (*domainUser.User, error)
	FetchUserByEmailFunc func(ctx context.Context, email string) (*domainUser.User, error)
	CreateUserFunc       func(ctx context.Context, req domainUser.User) (*domainUser.User, error)
	FetchInternalIDFunc  func(ctx context.Context, uuid domainUser.UUID) (domainUser.ID, error)
	DeleteUserFunc       func(ctx context.Context, id domainUser.ID) (*domainUser.User, error)
}

func (f *fakeUserRepo) FetchUserByID(ctx context.Context, uuid domainUser.UUID) (*domainUser.User, error) {
	if f.FetchUserByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByIDFunc(ctx, uuid)
}
func (f *fakeUserRepo) FetchUserByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	if f.FetchUserByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByEmailFunc(ctx, email)
}
func (f *fakeUserRepo) CreateUser(ctx context.Context, req domainUser.User) (*domainUser.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, req)
}
func (f *fakeUserRepo) FetchInternalID(ctx context.Context, uuid domainUser.UUID) (domainUser.ID, error) {
	if f.FetchInternalIDFunc == nil {
		return 0, errors.New("not used")
	}
	return f.FetchInternalIDFunc(ctx, uuid)
}
func (f *fakeUserRepo) DeleteUser(ctx context.Context, id domainUser.ID) (*domainUser.User, error) {
	if f.DeleteUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.DeleteUserFunc(ctx, id)
}

type fakeRabbit struct{ in chan mq.Event }

func newFakeRabbit() *fakeRabbit { return &fakeRabbit{in: make(chan mq.Event, 8)} }

func (f *fakeRabbit) Connect(ctx context.Context, dsn string) error { return nil }
func (f *fakeRabbit) Init() error                                   { return nil }
func (f *fakeRabbit) PublisherWorker(ctx context.Context)           {}
func (f *fakeRabbit) GetInputChan() chan mq.Event                   { return f.in }
func (f *fakeRabbit) GetConn() *amqp091.Connection                  { return nil }

func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_counters"}, []string{"result"})
}

func newTestStore(t *testing.T) *storage.LocalStore {
	t.Helper()

	l, err := storage.New(zap.NewNop(), config.Storage{Root: t.TempDir()})
	require.NoError(t, err)
	return l
}

func newFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &b)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func TestDocumentService_CreateDocument(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	rabbit := newFakeRabbit()
	userUUID := uuid.New()

	var storedPath string
	docRepo := &fakeDocumentRepo{
		CreateDocumentFunc: func(ctx context.Context, userID domainUser.ID, req *domainDoc.Document) (*domainDoc.Document, error) {
			assert.Equal(t, domainUser.ID(7), userID)
			storedPath = req.FilePath
			out := *req
			out.UUID = uuid.New()
			return &out, nil
		},
	}
	userRepo := &fakeUserRepo{
		FetchInternalIDFunc: func(ctx context.Context, uuid domainUser.UUID) (domainUser.ID, error) {
			return 7, nil
		},
	}

	svc := NewDocumentService(store, docRepo, userRepo, rabbit, newTestCounter())

	meta := domainDoc.Document{
		Category:     domainDoc.CategoryIncome,
		Amount:       1250.50,
		DocumentName: "Invoice March",
	}
	out, err := svc.CreateDocument(ctx, userUUID, testEmail, meta, newFileHeader(t, "Invoice March.PDF", []byte("%PDF-1.7")))
	require.NoError(t, err)
	require.NotNil(t, out)
	require.NotEmpty(t, storedPath)
	assert.Equal(t, storedPath, out.FilePath)

	// the bytes made it to disk
	rc, size, err := store.Open(ctx, testEmail, storedPath)
	require.NoError(t, err)
	rc.Close()
	assert.Equal(t, int64(len("%PDF-1.7")), size)

	// and the event went out
	select {
	case e := <-rabbit.in:
		assert.Equal(t, mq.EntityDocument, e.Entity)
		assert.Equal(t, http.MethodPost, e.Method)
		assert.Equal(t, userUUID.String(), e.UserID)
	default:
		t.Fatal("expected a published event")
	}
}

func TestDocumentService_CreateDocument_RepoFailureRemovesFile(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	rabbit := newFakeRabbit()

	var storedPath string
	docRepo := &fakeDocumentRepo{
		CreateDocumentFunc: func(ctx context.Context, userID domainUser.ID, req *domainDoc.Document) (*domainDoc.Document, error) {
			storedPath = req.FilePath
			return nil, errors.New("db error")
		},
	}
	userRepo := &fakeUserRepo{
		FetchInternalIDFunc: func(ctx context.Context, uuid domainUser.UUID) (domainUser.ID, error) {
			return 7, nil
		},
	}

	svc := NewDocumentService(store, docRepo, userRepo, rabbit, newTestCounter())

	_, err := svc.CreateDocument(ctx, uuid.New(), testEmail, domainDoc.Document{
		Category:     domainDoc.CategoryIncome,
		Amount:       1,
		DocumentName: "x",
	}, newFileHeader(t, "x.pdf", []byte("x")))
	require.Error(t, err)

	// the orphaned file was swept
	require.NotEmpty(t, storedPath)
	_, _, err = store.Open(ctx, testEmail, storedPath)
	require.ErrorIs(t, err, storage.ErrNotFound)

	select {
	case <-rabbit.in:
		t.Fatal("no event expected on failure")
	default:
	}
}

func TestDocumentService_UpdateDocument_ReplacesFile(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	rabbit := newFakeRabbit()
	docUUID := uuid.New()

	oldPath, err := store.Save(ctx, testEmail, "old.pdf", bytes.NewReader([]byte("old")))
	require.NoError(t, err)

	current := &domainDoc.Document{
		UUID:         docUUID,
		Category:     domainDoc.CategoryIncome,
		Amount:       10,
		DocumentName: "old",
		FilePath:     oldPath,
	}

	docRepo := &fakeDocumentRepo{
		FetchDocumentByIDFunc: func(ctx context.Context, userID domainUser.ID, id uuid.UUID) (*domainDoc.Document, error) {
			assert.Equal(t, docUUID, id)
			return current, nil
		},
		UpdateDocumentFunc: func(ctx context.Context, userID domainUser.ID, req *domainDoc.Document) (*domainDoc.Document, error) {
			out := *req
			return &out, nil
		},
	}
	userRepo := &fakeUserRepo{
		FetchInternalIDFunc: func(ctx context.Context, uuid domainUser.UUID) (domainUser.ID, error) {
			return 7, nil
		},
	}

	svc := NewDocumentService(store, docRepo, userRepo, rabbit, newTestCounter())

	newName := "renamed"
	out, err := svc.UpdateDocument(ctx, uuid.New(), testEmail, docUUID,
		domainDoc.Update{DocumentName: &newName},
		newFileHeader(t, "new.pdf", []byte("new bytes")))
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "renamed", out.DocumentName)
	assert.NotEqual(t, oldPath, out.FilePath)

	// superseded file is gone, the replacement is readable
	_, _, err = store.Open(ctx, testEmail, oldPath)
	require.ErrorIs(t, err, storage.ErrNotFound)
	rc, _, err := store.Open(ctx, testEmail, out.FilePath)
	require.NoError(t, err)
	rc.Close()

	select {
	case e := <-rabbit.in:
		assert.Equal(t, http.MethodPut, e.Method)
		assert.Equal(t, mq.EntityDocument, e.Entity)
	default:
		t.Fatal("expected a published event")
	}
}

func TestDocumentService_UpdateDocument_NotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	rabbit := newFakeRabbit()

	docRepo := &fakeDocumentRepo{
		FetchDocumentByIDFunc: func(ctx context.Context, userID domainUser.ID, id uuid.UUID) (*domainDoc.Document, error) {
			return nil, nil
		},
	}
	userRepo := &fakeUserRepo{
		FetchInternalIDFunc: func(ctx context.Context, uuid domainUser.UUID) (domainUser.ID, error) {
			return 7, nil
		},
	}

	svc := NewDocumentService(store, docRepo, userRepo, rabbit, newTestCounter())

	out, err := svc.UpdateDocument(ctx, uuid.New(), testEmail, uuid.New(), domainDoc.Update{}, nil)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestDocumentService_DeleteDocument(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	rabbit := newFakeRabbit()
	docUUID := uuid.New()

	relPath, err := store.Save(ctx, testEmail, "doc.pdf", bytes.NewReader([]byte("bye")))
	require.NoError(t, err)

	docRepo := &fakeDocumentRepo{
		DeleteDocumentFunc: func(ctx context.Context, userID domainUser.ID, id uuid.UUID) (*domainDoc.Document, error) {
			return &domainDoc.Document{UUID: id, Category: domainDoc.CategoryIncome, FilePath: relPath}, nil
		},
	}
	userRepo := &fakeUserRepo{
		FetchInternalIDFunc: func(ctx context.Context, uuid domainUser.UUID) (domainUser.ID, error) {
			return 7, nil
		},
	}

	svc := NewDocumentService(store, docRepo, userRepo, rabbit, newTestCounter())

	out, err := svc.DeleteDocument(ctx, uuid.New(), testEmail, docUUID)
	require.NoError(t, err)
	require.NotNil(t, out)

	_, _, err = store.Open(ctx, testEmail, relPath)
	require.ErrorIs(t, err, storage.ErrNotFound)

	select {
	case e := <-rabbit.in:
		assert.Equal(t, http.MethodDelete, e.Method)
	default:
		t.Fatal("expected a published event")
	}
}

func TestDocumentService_DeleteDocument_NotFound(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	rabbit := newFakeRabbit()

	docRepo := &fakeDocumentRepo{
		DeleteDocumentFunc: func(ctx context.Context, userID domainUser.ID, id uuid.UUID) (*domainDoc.Document, error) {
			return nil, nil
		},
	}
	userRepo := &fakeUserRepo{
		FetchInternalIDFunc: func(ctx context.Context, uuid domainUser.UUID) (domainUser.ID, error) {
			return 7, nil
		},
	}

	svc := NewDocumentService(store, docRepo, userRepo, rabbit, newTestCounter())

	out, err := svc.DeleteDocument(ctx, uuid.New(), testEmail, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, out)

	select {
	case <-rabbit.in:
		t.Fatal("no event expected for a missing document")
	default:
	}
}
