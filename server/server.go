package server

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/fasthttp/websocket"
	"github.com/michaelolof/vregistry"
	"github.com/michaelolof/vregistry/cont"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fastjson"
)

const validatePrefix = "/validate/"

// Server exposes a registry over HTTP and websocket.
//
//	GET  /validators       list resolved and unresolved names and known types
//	POST /validate/{name}  body is a JSON value, answers {"name","valid"}
//	GET  /ws               websocket, one {"name","value"} message per dispatch
type Server struct {
	registry vregistry.Dispatcher
	logger   vregistry.Logger
	cfg      Config
	upgrader websocket.FastHTTPUpgrader
}

func New(registry vregistry.Dispatcher, logger vregistry.Logger, cfg Config) *Server {
	return &Server{
		registry: registry,
		logger:   logger,
		cfg:      cfg,
		upgrader: websocket.FastHTTPUpgrader{
			CheckOrigin: func(ctx *fasthttp.RequestCtx) bool { return true },
		},
	}
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &fasthttp.Server{
		Handler:            s.Handler,
		Name:               s.cfg.Name,
		MaxRequestBodySize: s.cfg.MaxBodySize,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down server")
		if err := srv.Shutdown(); err != nil {
			return err
		}
		return <-errCh
	}
}

// Handler routes a single request.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())

	switch {
	case path == "/validators" && ctx.IsGet():
		s.handleList(ctx)
	case strings.HasPrefix(path, validatePrefix) && ctx.IsPost():
		s.handleValidate(ctx, strings.TrimPrefix(path, validatePrefix))
	case path == "/ws" && ctx.IsGet():
		s.handleWebsocket(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "", errors.New("route not found"))
	}
}

func (s *Server) handleList(ctx *fasthttp.RequestCtx) {
	resolved, unresolved := s.registry.Names()

	writeJSON(ctx, fasthttp.StatusOK, func(a *fastjson.Arena) *fastjson.Value {
		o := a.NewObject()
		o.Set("resolved", stringArray(a, resolved))
		o.Set("unresolved", stringArray(a, unresolved))

		ids := s.registry.Catalog().IDs()
		types := make([]string, len(ids))
		for i, id := range ids {
			types[i] = id.String()
		}
		o.Set("types", stringArray(a, types))
		return o
	})
}

func (s *Server) handleValidate(ctx *fasthttp.RequestCtx, name string) {
	if name == "" {
		writeError(ctx, fasthttp.StatusNotFound, name, errors.New("validator name is required"))
		return
	}

	value, err := cont.ParseValue(ctx.PostBody())
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, name, err)
		return
	}

	valid, err := s.registry.Dispatch(name, value)
	if err != nil {
		s.logger.Warn("dispatch failed", "name", name, "error", err)
		writeError(ctx, statusFor(err), name, err)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, func(a *fastjson.Arena) *fastjson.Value {
		return result(a, name, valid)
	})
}

func (s *Server) handleWebsocket(ctx *fasthttp.RequestCtx) {
	err := s.upgrader.Upgrade(ctx, func(conn *websocket.Conn) {
		defer conn.Close()

		for {
			mt, msg, err := conn.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					s.logger.Debug("websocket read failed", "error", err)
				}
				return
			}
			if mt != websocket.TextMessage {
				continue
			}

			if err := conn.WriteMessage(websocket.TextMessage, s.dispatchMessage(msg)); err != nil {
				s.logger.Debug("websocket write failed", "error", err)
				return
			}
		}
	})
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
	}
}

// dispatchMessage answers one {"name": ..., "value": ...} message.
func (s *Server) dispatchMessage(msg []byte) []byte {
	var name string
	var value any

	err := cont.Parse(msg, func(v *fastjson.Value) error {
		var err error
		if name, err = cont.GetString(v, "name"); err != nil {
			return errors.New("message 'name' must be a string")
		}
		value, err = cont.ToAny(v.Get("value"))
		return err
	})

	var valid bool
	if err == nil {
		valid, err = s.registry.Dispatch(name, value)
	}

	return marshal(func(a *fastjson.Arena) *fastjson.Value {
		if err != nil {
			return errorBody(a, name, err)
		}
		return result(a, name, valid)
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, vregistry.ErrUnknownValidator):
		return fasthttp.StatusNotFound
	case errors.Is(err, vregistry.ErrConstruction),
		errors.Is(err, vregistry.ErrInvalidValidatorType),
		errors.Is(err, vregistry.ErrUnknownType):
		return fasthttp.StatusUnprocessableEntity
	default:
		return fasthttp.StatusInternalServerError
	}
}
