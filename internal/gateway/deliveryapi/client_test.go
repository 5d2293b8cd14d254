package deliveryapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"entrega-tracker/internal/apperr"
	"entrega-tracker/internal/domain"
	"entrega-tracker/internal/gateway/deliveryapi"
	"entrega-tracker/internal/logx"
)

// fakeBackend implements just enough of the deliveries REST contract
// to exercise the client: an in-memory delivery table behind the four
// routes plus /login.
type fakeBackend struct {
	mu         sync.Mutex
	deliveries map[int64]map[string]any
	nextID     int64
	confirms   int
	idemKeys   []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{deliveries: make(map[int64]map[string]any), nextID: 1}
}

func (b *fakeBackend) put(d map[string]any) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	d["id"] = id
	b.deliveries[id] = d
	return id
}

func (b *fakeBackend) handler() http.Handler {
	r := chi.NewRouter()

	r.Post("/login", func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil || body.Email == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if body.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"user_id": 42})
	})

	r.Get("/deliveries/user/{userID}", func(w http.ResponseWriter, req *http.Request) {
		userID, _ := strconv.ParseInt(chi.URLParam(req, "userID"), 10, 64)
		b.mu.Lock()
		defer b.mu.Unlock()
		out := make([]map[string]any, 0)
		for id := int64(1); id < b.nextID; id++ {
			d, ok := b.deliveries[id]
			if ok && d["user_id"] == userID {
				out = append(out, d)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(out)
	})

	r.Get("/deliveries/details/{id}", func(w http.ResponseWriter, req *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
		b.mu.Lock()
		defer b.mu.Unlock()
		d, ok := b.deliveries[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(d)
	})

	r.Post("/deliveries", func(w http.ResponseWriter, req *http.Request) {
		var d map[string]any
		if err := json.NewDecoder(req.Body).Decode(&d); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		// user_id decodes as float64 from generic JSON; normalize.
		d["user_id"] = int64(d["user_id"].(float64))
		b.put(d)
		w.WriteHeader(http.StatusCreated)
	})

	r.Put("/deliveries/{id}/confirm", func(w http.ResponseWriter, req *http.Request) {
		id, _ := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
		var body map[string]string
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		d, ok := b.deliveries[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		b.confirms++
		b.idemKeys = append(b.idemKeys, req.Header.Get("Idempotency-Key"))
		d["status"] = "Concluído"
		d["received_by"] = body["received_by"]
		d["cpf_receiver"] = body["cpf_receiver"]
		d["relation"] = body["relation"]
		d["photo_url"] = body["photo_url"]
		w.WriteHeader(http.StatusOK)
	})

	return r
}

func newClient(t *testing.T, backend *fakeBackend) *deliveryapi.Client {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)
	return deliveryapi.NewClient(srv.URL, srv.Client(), logx.Nop())
}

func seedDelivery(b *fakeBackend, userID int64, receiver, city string) int64 {
	return b.put(map[string]any{
		"receiver":     receiver,
		"cep":          "01310-100",
		"street":       "Av. Paulista",
		"number":       "1000",
		"complement":   "",
		"neighborhood": "Bela Vista",
		"city":         city,
		"state":        "SP",
		"description":  "",
		"status":       "Em andamento",
		"user_id":      userID,
	})
}

func TestClient_ListByUser(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	seedDelivery(backend, 42, "João", "São Paulo")
	seedDelivery(backend, 42, "Maria", "Campinas")
	seedDelivery(backend, 7, "Outro", "Santos")

	client := newClient(t, backend)

	list, err := client.ListByUser(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "João", list[0].Receiver)
	require.Equal(t, "Maria", list[1].Receiver)
	require.Equal(t, domain.StatusInProgress, list[0].Status)
	require.Equal(t, int64(42), list[0].OwnerUserID)
}

func TestClient_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	client := newClient(t, newFakeBackend())

	_, err := client.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, apperr.NotFound)
}

func TestClient_CreateThenList(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	client := newClient(t, backend)

	n := domain.NewDelivery{
		Receiver: "Ana",
		Address: domain.Address{
			CEP:          "01310-100",
			Street:       "Av. Paulista",
			Number:       "1000",
			Neighborhood: "Bela Vista",
			City:         "São Paulo",
			State:        "SP",
		},
	}
	require.NoError(t, client.Create(context.Background(), n, 42))

	list, err := client.ListByUser(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Ana", list[0].Receiver)
	require.Equal(t, domain.StatusInProgress, list[0].Status)
}

func TestClient_ConfirmReflectedInDetails(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	id := seedDelivery(backend, 42, "João", "São Paulo")
	client := newClient(t, backend)

	proof := domain.Proof{
		ReceivedBy:  "Maria",
		CPFReceiver: "12345678900",
		Relation:    "Esposa",
		PhotoURL:    "file://x.jpg",
	}
	require.NoError(t, client.Confirm(context.Background(), id, proof, "key-1"))

	got, err := client.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, got.Status)
	require.Equal(t, proof, got.Proof)
	require.True(t, got.ConsistentProof())
	require.Equal(t, []string{"key-1"}, backend.idemKeys)
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	client := newClient(t, newFakeBackend())

	id, err := client.Login(context.Background(), "joao@example.com", "secret")
	require.NoError(t, err)
	require.Equal(t, int64(42), id)

	_, err = client.Login(context.Background(), "joao@example.com", "wrong")
	require.ErrorIs(t, err, apperr.NotAuthenticated)
}

func TestClient_ServerErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := deliveryapi.NewClient(srv.URL, srv.Client(), logx.Nop())

	_, err := client.ListByUser(context.Background(), 42)
	require.ErrorIs(t, err, apperr.Unavailable)
}

func TestClient_TransportErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := deliveryapi.NewClient(srv.URL, nil, logx.Nop())

	_, err := client.GetByID(context.Background(), 1)
	require.ErrorIs(t, err, apperr.Unavailable)
}
