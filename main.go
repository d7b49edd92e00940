package main

import (
	"embed"
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"log"
	"os"
	"time"
)

// ReleaseVersion is the version of an executable built and given to someone
// to run, either as a native executable or a .wasm in the browser. It is
// meant as a unique label for what a user is presented with.
// ReleaseVersion must change when SimulationVersion or InputVersion change.
// It also changes when nothing about the simulation changes but the
// executable does: uploads turned on or off, asserts turned on or off,
// different fonts or colors.
const ReleaseVersion = 1

//go:embed data/*
var embeddedFiles embed.FS

type GameState int64

const (
	PlayScreen GameState = iota
	Playback
	DebugCrash
)

type Gui struct {
	Config
	UserData
	world             World
	visWorld          VisWorld
	FSys              FS
	textures          Textures
	folderWatcher     FolderWatcher
	defaultFont       font.Face
	playthrough       Playthrough
	frameIdx          int64
	state             GameState
	sessionStart      time.Time
	mousePt           Pt
	playbackPaused    bool
	pressedKeys       []ebiten.Key
	justPressedKeys   []ebiten.Key // keys pressed in this frame
	FrameSkipShift    int64
	FrameSkipArrow    int64
	enableDebugAreas  bool
	gameArea          Rectangle
	debugArea         Rectangle
	buttonPlaybackBar Rectangle
	username          string
	userDataStore     *UserDataStore
	// Uploads happen on separate goroutines so that a slow connection never
	// stalls the animation.
	uploadUserDataChannel    chan UserData
	uploadPlaythroughChannel chan *Playthrough
	devModeEnabled           bool
}

type Config struct {
	StartState    string `yaml:"StartState"`
	PlaybackFile  string `yaml:"PlaybackFile"`
	RecordToFile  bool   `yaml:"RecordToFile"`
	RecordingFile string `yaml:"RecordingFile"`
	ShowDebugInfo bool   `yaml:"ShowDebugInfo"`
	Fullscreen    bool   `yaml:"Fullscreen"`
}

func main() {
	if len(os.Args) == 3 && os.Args[1] == "inspect" {
		p := DeserializePlaythrough(ReadFile(os.Args[2]))
		PrintInspectReport(os.Stdout, &p)
		return
	}

	var g Gui
	g.username = getUsername()
	g.FrameSkipShift = 10
	g.FrameSkipArrow = 1

	store, err := OpenUserDataStore("newyear")
	if err != nil {
		// Not fatal, the count of celebrations just won't survive a restart.
		log.Printf("[UserData] Warning: %v", err)
	}
	g.userDataStore = store
	g.UserData = LoadUserData(g.userDataStore, g.username)
	// A channel size of 10 means the channel will buffer 10 items before it
	// is full and it blocks. A celebration takes 10 seconds, so the uploads
	// have plenty of time to keep up.
	g.uploadUserDataChannel = make(chan UserData, 10)
	go UploadUserData(g.username, g.userDataStore, g.uploadUserDataChannel)
	g.uploadPlaythroughChannel = make(chan *Playthrough, 10)
	go UploadPlaythroughs(g.username, g.uploadPlaythroughChannel)

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		// Initialize the watcher with the current timestamps of files, so that
		// the first check after startup doesn't report a change.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	if g.StartState == "Playback" {
		g.state = Playback
		g.enableDebugAreas = true
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
	} else if g.StartState == "DebugCrash" {
		g.state = DebugCrash
		g.enableDebugAreas = true
		// Don't crash when we are debugging the crash. This is useful if the
		// crash was caused by one of my asserts: I can step through the
		// frame that crashed and see the results visually.
		CheckCrashes = false
		g.playthrough = DeserializePlaythrough(ReadFile(g.PlaybackFile))
	} else if g.StartState == "Play" {
		g.state = PlayScreen
		g.playthrough = NewPlaythrough(time.Now().UnixNano(),
			Pt{GameWidth, GameHeight})
		InitializeIdInDbHttp(g.username, &g.playthrough)
	} else {
		panic(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	g.world = NewWorldFromPlaythrough(g.playthrough)
	g.visWorld = NewVisWorld()
	g.sessionStart = time.Now()

	// The last input caused the crash, so run the whole playthrough except the
	// last input. This gives me a chance to see the current state of the world
	// visually, and then trigger the bug when I'm ready.
	if g.state == DebugCrash {
		g.frameIdx = int64(len(g.playthrough.History)) - 1
		for i := range g.frameIdx {
			g.world.Step(g.playthrough.History[i])
		}
		g.visWorld.Step(&g.world)
	}

	err = ebiten.RunGame(&g)
	Check(err)
}
