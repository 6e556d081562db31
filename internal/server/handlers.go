package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pixil98/union-domain/internal/commands"
	"github.com/pixil98/union-domain/internal/game"
	"github.com/pixil98/union-domain/internal/hub"
	"github.com/pixil98/union-domain/internal/world"
)

const maxBodyBytes = 1 << 20

const msgBadSecret = "secrets do not match"

type arriveRequest struct {
	User    string        `json:"user"`
	From    string        `json:"from"`
	Secret  string        `json:"secret"`
	Owned   []*world.Item `json:"owned"`
	Carried []*world.Item `json:"carried"`
	Dropped []*world.Item `json:"dropped"`
	Prize   []*world.Item `json:"prize"`
}

type departRequest struct {
	User string `json:"user"`
}

// droppedItem accepts either a bare item id or a full item object.
type droppedItem world.ItemID

func (d *droppedItem) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var it world.Item
		if err := json.Unmarshal(b, &it); err != nil {
			return fmt.Errorf("unmarshalling dropped item: %w", err)
		}
		*d = droppedItem(it.ID)
		return nil
	}

	var id world.ItemID
	if err := id.UnmarshalJSON(b); err != nil {
		return err
	}
	*d = droppedItem(id)
	return nil
}

type droppedRequest struct {
	User   string      `json:"user"`
	Secret string      `json:"secret"`
	Item   droppedItem `json:"item"`
}

type commandRequest struct {
	User    string   `json:"user"`
	Command []string `json:"command"`
}

type healthResponse struct {
	Registered bool         `json:"registered"`
	Domain     hub.DomainID `json:"domain,omitempty"`
	Players    int          `json:"players"`
}

func decode(r *http.Request, v any) error {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("reading body: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding body: %w", err)
	}
	return nil
}

// handleNewHub registers with the hub whose URL is the request body.
func (s *Server) handleNewHub(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	hubURL := strings.TrimSpace(string(data))
	if hubURL == "" {
		writeError(w, http.StatusBadRequest, "hub url is required")
		return
	}

	reg, err := s.registrar.Register(r.Context(), hubURL)
	var hubErr *hub.Error
	if errors.As(err, &hubErr) {
		writeHubError(w, err)
		return
	}
	if err != nil {
		requestLogger(r).ErrorContext(r.Context(), "registering with hub", "hub", hubURL, "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error during /newhub: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"ok": fmt.Sprintf("registered as domain %s", reg.Id)})
}

func (s *Server) handleArrive(w http.ResponseWriter, r *http.Request) {
	var req arriveRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	release, ok := s.registrar.Admit(req.Secret)
	if !ok {
		writeError(w, http.StatusBadRequest, msgBadSecret)
		return
	}
	defer release()

	if req.User == "" {
		writeError(w, http.StatusBadRequest, "user is required")
		return
	}

	room, err := s.store.Arrive(req.User, req.From, game.Holdings{
		Owned:   req.Owned,
		Carried: req.Carried,
		Dropped: req.Dropped,
		Prize:   req.Prize,
	})
	if err != nil {
		requestLogger(r).ErrorContext(r.Context(), "arrival", "user", req.User, "from", req.From, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	requestLogger(r).InfoContext(r.Context(), "user arrived", "user", req.User, "from", req.From, "room", room)
	s.publish(r, game.Event{Type: game.EventArrived, User: req.User, Room: room})
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleDepart(w http.ResponseWriter, r *http.Request) {
	var req departRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	release := s.registrar.Hold()
	defer release()

	err := s.store.Depart(req.User)
	if errors.Is(err, game.ErrPlayerNotFound) {
		requestLogger(r).WarnContext(r.Context(), "departure of unknown user", "user", req.User)
		w.WriteHeader(http.StatusOK)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.publish(r, game.Event{Type: game.EventDeparted, User: req.User})
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleDropped(w http.ResponseWriter, r *http.Request) {
	var req droppedRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	release, ok := s.registrar.Admit(req.Secret)
	if !ok {
		writeError(w, http.StatusBadRequest, msgBadSecret)
		return
	}
	defer release()

	item := world.ItemID(req.Item)
	room, err := s.store.Dropped(req.User, item)
	switch {
	case errors.Is(err, game.ErrItemNotRecognized):
		writeError(w, http.StatusBadRequest, "Item not recognized")
		return
	case errors.Is(err, game.ErrPlayerNotFound):
		writeError(w, http.StatusBadRequest, "User not recognized")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.publish(r, game.Event{Type: game.EventDropped, User: req.User, Room: room, Item: item})
	writeJSON(w, http.StatusOK, room)
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	release := s.registrar.Hold()
	defer release()

	out, err := s.commands.Exec(r.Context(), req.User, req.Command)
	switch {
	case errors.Is(err, game.ErrPlayerAway):
		writeText(w, http.StatusConflict, commands.MsgAway)
		return
	case errors.Is(err, commands.ErrHubCall):
		requestLogger(r).WarnContext(r.Context(), "hub call failed", "user", req.User, "command", req.Command, "error", err)
		writeHubError(w, err)
		return
	case err != nil:
		requestLogger(r).ErrorContext(r.Context(), "command failed", "user", req.User, "command", req.Command, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeText(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := healthResponse{Players: s.store.Len()}
	if reg, ok := s.client.Registration(); ok {
		resp.Registered = true
		resp.Domain = reg.Id
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) publish(r *http.Request, ev game.Event) {
	ev.Time = time.Now()
	if err := s.publisher.PublishEvent(r.Context(), ev); err != nil {
		requestLogger(r).WarnContext(r.Context(), "publishing event", "type", ev.Type, "user", ev.User, "error", err)
	}
}
