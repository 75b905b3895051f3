package app

import (
	"sync"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/gosketch/internal/config"
	"github.com/philipparndt/gosketch/internal/editor"
	"github.com/philipparndt/gosketch/pkg/analysis"
	"github.com/philipparndt/gosketch/pkg/watcher"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // Current camera target (can be panned)
	defaultDist   float32    // Default camera distance (for reset)
	defaultAngleX float32    // Default camera angle X (for reset)
	defaultAngleY float32    // Default camera angle Y (for reset)
}

// InteractionState holds mouse and interaction state
type InteractionState struct {
	mouseDownPos rl.Vector2
	mouseMoved   bool
	isPanning    bool
	// pointerDown is set when the press was forwarded to the editor as a drag
	pointerDown bool
	// consumed is set when the press landed on a UI control
	consumed bool
}

// ViewSettings holds display settings
type ViewSettings struct {
	background  rl.Color
	grid        rl.Color
	segment     rl.Color
	vertex      rl.Color
	gridSize    int
	gridSpacing float32
}

// UIState holds UI-related state
type UIState struct {
	font       rl.Font
	buttons    []button
	heightText string
	notice     string
	noticeAt   time.Time

	reportID editor.SolidID
	report   *analysis.Report
}

// ConfigState holds the settings and the pending hot reload
type ConfigState struct {
	path    string
	cfg     config.Config
	watcher *watcher.FileWatcher

	mu      sync.Mutex
	pending *config.Config // written by the watcher goroutine
}

// ProjectState tracks where the session is saved
type ProjectState struct {
	path          string
	autosave      string
	savedRevision int
}
