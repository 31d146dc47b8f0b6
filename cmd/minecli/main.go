// minecli plays a minefield board in the terminal. Board saves go to
// a local sqlite file; the last used size and mine count persist via
// the settings file.
package main

import (
	"bufio"
	"database/sql"
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/minefield/minefield-server/internal/board"
	"github.com/minefield/minefield-server/internal/settings"
	"github.com/minefield/minefield-server/internal/store"
)

var (
	log = logrus.New()

	settingsPath string
	savesPath    string
	logPath      string
)

func init() {
	flag.StringVar(&settingsPath, "settings", "minecli.json", "settings file path")
	flag.StringVar(&savesPath, "saves", "minecli.db", "saves database path")
	flag.StringVar(&logPath, "log", "minecli.log", "log file path")
}

func setupLogging() {
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logPath,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to create file log hook: ", err)
	}
	log.AddHook(hook)
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

type cli struct {
	board    *board.Board
	saves    *store.Store
	rnd      *rand.Rand
	settings settings.Settings
}

func (c *cli) render() {
	size := c.board.Size()
	states := c.board.States()

	fmt.Print("   ")
	for x := range size.X {
		fmt.Printf("%d ", x%10)
	}
	fmt.Println()
	for y := range size.Y {
		fmt.Printf("%2d ", y)
		for x := range size.X {
			fmt.Print(states[y*size.X+x].String() + " ")
		}
		fmt.Println()
	}

	switch c.board.Outcome() {
	case board.Victory:
		fmt.Println("cleared! type r for another round")
	case board.Defeat:
		fmt.Println("boom. type r to try again")
	}
}

// reportChanges drains the batches the last operation produced, the
// same feed a graphical renderer would animate from.
func (c *cli) reportChanges() {
	mods := c.board.Modifications()
	for mods.PendingCount() > 0 {
		batch := mods.DrainOldest()
		fmt.Printf("%d cell(s) changed\n", len(batch))
	}
}

func (c *cli) parsePosition(args []string) (board.Point, bool) {
	if len(args) != 2 {
		fmt.Println("expected: x y")
		return board.Point{}, false
	}
	p, err := board.ParsePoint(args[0] + "x" + args[1])
	if err != nil {
		fmt.Println(err)
		return board.Point{}, false
	}
	return p, true
}

func (c *cli) resize(args []string) {
	if len(args) != 2 {
		fmt.Println("expected: z WxH mines")
		return
	}
	size, err := board.ParsePoint(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	var mineCount int
	if _, err := fmt.Sscanf(args[1], "%d", &mineCount); err != nil {
		fmt.Println("mine count must be an integer")
		return
	}
	if err := c.board.Resize(size, mineCount); err != nil {
		fmt.Println(err)
		return
	}
	c.settings.Size = size.String()
	c.settings.MineCount = mineCount
	if err := c.settings.Save(settingsPath); err != nil {
		log.Warn("unable to save settings: ", err)
	}
}

func (c *cli) save(name string) {
	buf, err := c.board.Bytes()
	if err != nil {
		log.Error("unable to encode board: ", err)
		fmt.Println("save failed")
		return
	}
	if err := c.saves.Set(name, buf); err != nil {
		log.Error("unable to write save: ", err)
		fmt.Println("save failed")
		return
	}
	fmt.Printf("saved %q\n", name)
}

func (c *cli) load(name string) {
	var buf []byte
	err := c.saves.Get(name, &buf)
	if err == store.ErrNotFound {
		fmt.Printf("no save named %q\n", name)
		return
	}
	if err != nil {
		log.Error("unable to read save: ", err)
		fmt.Println("load failed")
		return
	}
	b, err := board.Decode(buf, c.rnd)
	if err != nil {
		log.Error("unable to decode save: ", err)
		fmt.Println("load failed")
		return
	}
	c.board = b
	fmt.Printf("loaded %q\n", name)
}

func (c *cli) listSaves() {
	keys, err := c.saves.Keys()
	if err != nil {
		log.Error("unable to list saves: ", err)
		fmt.Println("listing failed")
		return
	}
	if len(keys) == 0 {
		fmt.Println("no saves yet")
		return
	}
	for _, k := range keys {
		fmt.Println(k)
	}
}

const usage = `commands:
  d x y      dig at x,y
  c x y      chord a revealed number at x,y
  m x y      cycle flag/question mark at x,y
  r          restart with a fresh layout
  z WxH n    resize to WxH with n mines
  save NAME  save the current board
  load NAME  load a saved board
  saves      list saves
  q          quit`

// dispatch runs one command line and reports whether to keep going.
func (c *cli) dispatch(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}

	var err error
	switch parts[0] {
	case "q":
		return false
	case "d":
		if p, ok := c.parsePosition(parts[1:]); ok {
			err = c.board.DigFieldAt(p)
		}
	case "c":
		if p, ok := c.parsePosition(parts[1:]); ok {
			err = c.board.DigPerimeterAt(p)
		}
	case "m":
		if p, ok := c.parsePosition(parts[1:]); ok {
			err = c.board.MarkFieldAt(p)
		}
	case "r":
		c.board.Rebuild()
	case "z":
		c.resize(parts[1:])
	case "save":
		if len(parts) == 2 {
			c.save(parts[1])
		} else {
			fmt.Println("expected: save NAME")
		}
	case "load":
		if len(parts) == 2 {
			c.load(parts[1])
		} else {
			fmt.Println("expected: load NAME")
		}
	case "saves":
		c.listSaves()
	default:
		fmt.Println(usage)
		return true
	}
	if err != nil {
		fmt.Println(err)
		return true
	}

	c.reportChanges()
	c.render()
	return true
}

func main() {
	flag.Parse()
	setupLogging()

	db, err := sql.Open("sqlite3", savesPath)
	if err != nil {
		log.Fatal("unable to open saves database: ", err)
	}
	defer db.Close()

	saves, err := store.New(db, "saves")
	if err != nil {
		log.Fatal("unable to create saves store: ", err)
	}

	cfg, err := settings.Load(settingsPath)
	if err != nil {
		log.Warn("unable to load settings, using defaults: ", err)
		cfg = settings.Default()
	}
	size, mineCount, err := cfg.BoardParams()
	if err != nil {
		log.Warn("invalid settings, using defaults: ", err)
		cfg = settings.Default()
		size, mineCount, _ = cfg.BoardParams()
	}

	rnd := createRand()
	b, err := board.New(size, mineCount, rnd)
	if err != nil {
		log.Fatal("unable to build board: ", err)
	}

	c := &cli{board: b, saves: saves, rnd: rnd, settings: cfg}

	fmt.Printf("minefield %v with %d mines\n", size, mineCount)
	fmt.Println(usage)
	c.render()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		if !c.dispatch(scanner.Text()) {
			break
		}
		fmt.Print("> ")
	}
}
