package handlers

import (
	"encoding/binary"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"voicesmith/internal/domains/voice"
	"voicesmith/pkg/Logger"
	"voicesmith/pkg/audio/capture"
	"voicesmith/pkg/audio/session"
	"voicesmith/pkg/audio/waveform"
)

// Binary capture messages carry an 8-byte header before the PCM16 payload:
// sample rate (uint32 LE), channel count (uint16 LE), 2 reserved bytes.
const captureHeaderBytes = 8

// CaptureHandler owns the live capture WebSocket. Each connection gets its
// own capture session; binary messages are audio frames, text messages are
// JSON control commands.
type CaptureHandler struct {
	logger   *Logger.Logger
	upgrader websocket.Upgrader
	columns  int
	tmpDir   string
	events   <-chan voice.UploadEvent
}

// captureCommand is one client control message.
type captureCommand struct {
	Action string  `json:"action"` // start, stop, status, selection, export, discard
	Start  float64 `json:"start,omitempty"`
	End    float64 `json:"end,omitempty"`
}

// captureReply is the server's JSON answer on the control stream.
type captureReply struct {
	Type      string              `json:"type"`
	State     string              `json:"state,omitempty"`
	Elapsed   float64             `json:"elapsed,omitempty"`
	Duration  float64             `json:"duration,omitempty"`
	FileName  string              `json:"fileName,omitempty"`
	Trimmed   bool                `json:"trimmed,omitempty"`
	Accepted  bool                `json:"accepted,omitempty"`
	Selection *waveform.Selection `json:"selection,omitempty"`
	Peaks     []waveform.Peak     `json:"peaks,omitempty"`
	Message   string              `json:"message,omitempty"`
}

// NewCaptureHandler creates a capture WebSocket handler. events, when not
// nil, is streamed to clients of the upload events socket.
func NewCaptureHandler(columns int, tmpDir string, events <-chan voice.UploadEvent, logger *Logger.Logger) *CaptureHandler {
	return &CaptureHandler{
		logger:  logger,
		columns: columns,
		tmpDir:  tmpDir,
		events:  events,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
}

// RegisterRoutes registers WebSocket routes
func (h *CaptureHandler) RegisterRoutes(router gin.IRouter) {
	ws := router.Group("/ws")
	{
		ws.GET("/capture", h.HandleCapture)
		ws.GET("/uploads", h.HandleUploadEvents)
	}
}

// HandleCapture runs one capture session over a WebSocket connection.
func (h *CaptureHandler) HandleCapture(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorf("capture WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	device := capture.NewStreamDevice(256)
	sess := session.NewSession(device, h.columns, h.tmpDir, h.logger)
	defer func() {
		if err := sess.Close(); err != nil {
			h.logger.Warnf("capture session close: %v", err)
		}
	}()

	h.logger.Infof("capture session opened from %s", c.ClientIP())

	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warnf("capture read error: %v", err)
			}
			return
		}

		switch msgType {
		case websocket.BinaryMessage:
			h.ingestFrame(device, payload)
		case websocket.TextMessage:
			if !h.handleCommand(c, conn, sess, payload) {
				return
			}
		}
	}
}

// ingestFrame decodes one binary audio message and feeds it to the device.
func (h *CaptureHandler) ingestFrame(device *capture.StreamDevice, payload []byte) {
	if len(payload) <= captureHeaderBytes {
		return
	}
	rate := binary.LittleEndian.Uint32(payload[0:4])
	channels := binary.LittleEndian.Uint16(payload[4:6])
	if rate == 0 || channels == 0 {
		return
	}
	device.Feed(capture.Frame{
		Data:       payload[captureHeaderBytes:],
		SampleRate: int32(rate),
		Channels:   int16(channels),
		Timestamp:  time.Now(),
	})
}

// handleCommand executes one control message, reporting whether the
// connection should stay open.
func (h *CaptureHandler) handleCommand(c *gin.Context, conn *websocket.Conn, sess *session.Session, payload []byte) bool {
	var cmd captureCommand
	if err := json.Unmarshal(payload, &cmd); err != nil {
		h.send(conn, captureReply{Type: "error", Message: "malformed command"})
		return true
	}

	switch cmd.Action {
	case "start":
		if err := sess.StartRecording(c.Request.Context()); err != nil {
			h.send(conn, captureReply{Type: "error", Message: err.Error()})
			return true
		}
		h.send(conn, captureReply{Type: "status", State: sess.RecorderState()})

	case "stop":
		result, err := sess.StopRecording(c.Request.Context())
		if err != nil {
			h.send(conn, captureReply{Type: "error", Message: err.Error()})
			return true
		}
		if res := <-result; res.Err != nil {
			h.send(conn, captureReply{Type: "error", Message: "recording could not be decoded"})
			return true
		}
		h.sendWaveform(conn, sess)

	case "status":
		h.send(conn, captureReply{
			Type:    "status",
			State:   sess.RecorderState(),
			Elapsed: sess.Elapsed(),
		})

	case "selection":
		sel, accepted := sess.UpdateSelection(waveform.Selection{Start: cmd.Start, End: cmd.End})
		h.send(conn, captureReply{Type: "selection", Selection: &sel, Accepted: accepted})

	case "export":
		res, err := sess.Export()
		if err != nil {
			h.send(conn, captureReply{Type: "error", Message: err.Error()})
			return true
		}
		h.send(conn, captureReply{
			Type:     "export",
			FileName: res.FileName,
			Duration: res.Duration,
			Trimmed:  res.Trimmed,
		})
		if err := conn.WriteMessage(websocket.BinaryMessage, res.File); err != nil {
			h.logger.Warnf("capture export write failed: %v", err)
			return false
		}

	case "discard":
		sess.Discard()
		h.send(conn, captureReply{Type: "status", State: sess.RecorderState()})

	default:
		h.send(conn, captureReply{Type: "error", Message: "unknown action"})
	}
	return true
}

func (h *CaptureHandler) sendWaveform(conn *websocket.Conn, sess *session.Session) {
	wave, ok := sess.Renderer.Waveform()
	if !ok {
		h.send(conn, captureReply{Type: "error", Message: "no waveform available"})
		return
	}
	sel, _ := sess.Renderer.Selection.Current()
	h.send(conn, captureReply{
		Type:      "waveform",
		Duration:  wave.Duration,
		Peaks:     wave.Peaks,
		Selection: &sel,
	})
}

func (h *CaptureHandler) send(conn *websocket.Conn, reply captureReply) {
	if err := conn.WriteJSON(reply); err != nil {
		h.logger.Warnf("capture write failed: %v", err)
	}
}

// HandleUploadEvents streams clone upload progress events to the client.
func (h *CaptureHandler) HandleUploadEvents(c *gin.Context) {
	if h.events == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Upload events are not enabled"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorf("uploads WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-h.events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				h.logger.Warnf("upload event write failed: %v", err)
				return
			}
		}
	}
}
