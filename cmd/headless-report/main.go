package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Garsondee/Void-Runner/internal/config"
	"github.com/Garsondee/Void-Runner/internal/content"
	"github.com/Garsondee/Void-Runner/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	session  string

	firstKillTick  int
	firstDoorTick  int
	firstDeathTick int

	kills       int
	doorsOpened int
	wallsBroken int
	pickups     int
	deaths      int
	poolFull    int
	rooms       []int
	killsByKind map[string]int

	finalRoom    int
	finalShields float64
}

type setup struct {
	cfg     *config.Config
	stats   *content.Table
	rooms   *game.RoomSet
	metrics *game.Metrics
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var startRoom int
	var metricsAddr string
	var configPath, contentPath, roomsPath string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&startRoom, "room", 0, "room each run starts in")
	flag.StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus /metrics on this address while running")
	flag.StringVar(&configPath, "config", "", "tuning YAML (default $"+config.EnvPath+")")
	flag.StringVar(&contentPath, "content", "", "content table YAML overlay")
	flag.StringVar(&roomsPath, "rooms", "", "room set YAML (default built-in demo rooms)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	st, err := loadSetup(configPath, contentPath, roomsPath)
	if err != nil {
		log.Fatal(err)
	}
	if metricsAddr == "" {
		metricsAddr = st.cfg.Metrics.Addr
	}
	if metricsAddr != "" {
		reg := prometheus.NewRegistry()
		st.metrics = game.NewMetrics(reg)
		srv := &http.Server{Addr: metricsAddr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("metrics server: %v", err)
			}
		}()
		defer srv.Close()
	}

	fmt.Printf("=== Headless Flight Report ===\n")
	fmt.Printf("report=%s runs=%d ticks=%d room=%d seed_base=%d seed_step=%d\n\n",
		uuid.NewString(), runs, ticks, startRoom, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, err := runAutopilot(st, i+1, seed, startRoom, ticks)
		if err != nil {
			log.Fatal(err)
		}
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func loadSetup(configPath, contentPath, roomsPath string) (setup, error) {
	var st setup
	var err error
	if st.cfg, err = config.Load(configPath); err != nil {
		return st, err
	}
	st.stats = content.Default()
	if contentPath != "" {
		if st.stats, err = content.Load(contentPath); err != nil {
			return st, err
		}
	}
	st.rooms = game.DemoRooms()
	if roomsPath != "" {
		if st.rooms, err = game.LoadRoomSet(roomsPath); err != nil {
			return st, err
		}
	}
	return st, nil
}

// runAutopilot flies one run. A lost ship restarts in the start room once
// the game-over sequence finishes.
func runAutopilot(st setup, runIndex int, seed int64, startRoom, ticks int) (runStats, error) {
	simLog := game.NewSimLog(false)
	s, err := game.NewSpace(game.Setup{
		Config:  st.cfg,
		Stats:   st.stats,
		Rooms:   st.rooms,
		Log:     simLog,
		Metrics: st.metrics,
		Seed:    seed,
	})
	if err != nil {
		return runStats{}, err
	}
	if err := s.LoadRoom(startRoom); err != nil {
		return runStats{}, err
	}

	ap := game.NewAutopilot()
	dt := st.cfg.TickSeconds()
	for i := 0; i < ticks; i++ {
		if s.GameOver() {
			if err := s.Restart(startRoom); err != nil {
				return runStats{}, err
			}
		}
		s.Controls = ap.Controls(s)
		s.Step(dt)
		s.SaveRequested = false
		s.Sounds.Drain()
	}

	entries := simLog.Entries()
	return runStats{
		runIndex:       runIndex,
		seed:           seed,
		session:        s.SessionID.String(),
		firstKillTick:  firstTick(entries, "baddie", "kill"),
		firstDoorTick:  firstTick(entries, "door", "open"),
		firstDeathTick: firstTick(entries, "ship", "death"),
		kills:          simLog.CountCategory("baddie", "kill"),
		doorsOpened:    simLog.CountCategory("door", "open"),
		wallsBroken:    simLog.CountCategory("wall", "break"),
		pickups:        simLog.CountCategory("ship", "pickup"),
		deaths:         simLog.CountCategory("ship", "death"),
		poolFull:       simLog.CountCategory("pool", "full"),
		rooms:          roomsEntered(entries),
		killsByKind:    countValues(simLog.Filter("baddie", "kill")),
		finalRoom:      s.Room,
		finalShields:   s.Player.Shields,
	}, nil
}

func firstTick(entries []game.SimLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

// roomsEntered lists distinct rooms in order of first entry.
func roomsEntered(entries []game.SimLogEntry) []int {
	seen := map[int]bool{}
	var out []int
	for _, e := range entries {
		if e.Category != "room" || e.Key != "enter" {
			continue
		}
		r := int(e.NumVal)
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

func countValues(entries []game.SimLogEntry) map[string]int {
	out := map[string]int{}
	for _, e := range entries {
		out[e.Value]++
	}
	return out
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d session=%s) ---\n", rs.runIndex, rs.seed, rs.session)
	fmt.Printf("markers: first_kill=%d first_door=%d first_death=%d\n",
		rs.firstKillTick, rs.firstDoorTick, rs.firstDeathTick)
	fmt.Printf("totals: kills=%d doors_opened=%d walls_broken=%d pickups=%d deaths=%d pool_full=%d\n",
		rs.kills, rs.doorsOpened, rs.wallsBroken, rs.pickups, rs.deaths, rs.poolFull)
	fmt.Printf("kills_by_kind: %s\n", joinCounts(rs.killsByKind))
	fmt.Printf("rooms_entered: %s final_room=%d final_shields=%.0f\n", joinInts(rs.rooms), rs.finalRoom, rs.finalShields)
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalKills := 0
	totalDoors := 0
	totalWalls := 0
	totalPickups := 0
	totalDeaths := 0
	killTicks := make([]int, 0, len(all))
	doorTicks := make([]int, 0, len(all))
	deathTicks := make([]int, 0, len(all))
	kinds := map[string]int{}
	rooms := map[int]int{}

	for _, rs := range all {
		totalKills += rs.kills
		totalDoors += rs.doorsOpened
		totalWalls += rs.wallsBroken
		totalPickups += rs.pickups
		totalDeaths += rs.deaths
		if rs.firstKillTick >= 0 {
			killTicks = append(killTicks, rs.firstKillTick)
		}
		if rs.firstDoorTick >= 0 {
			doorTicks = append(doorTicks, rs.firstDoorTick)
		}
		if rs.firstDeathTick >= 0 {
			deathTicks = append(deathTicks, rs.firstDeathTick)
		}
		for k, n := range rs.killsByKind {
			kinds[k] += n
		}
		for _, r := range rs.rooms {
			rooms[r]++
		}
	}

	n := len(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", n)
	fmt.Printf("avg_per_run: kills=%.1f doors_opened=%.1f walls_broken=%.1f pickups=%.1f deaths=%.1f\n",
		avg(totalKills, n), avg(totalDoors, n), avg(totalWalls, n), avg(totalPickups, n), avg(totalDeaths, n))
	fmt.Printf("marker_avg_ticks: first_kill=%s first_door=%s first_death=%s\n",
		avgTickString(killTicks), avgTickString(doorTicks), avgTickString(deathTicks))
	fmt.Printf("kills_by_kind: %s\n", joinCounts(kinds))

	keys := make([]int, 0, len(rooms))
	for r := range rooms {
		keys = append(keys, r)
	}
	sort.Ints(keys)
	parts := make([]string, len(keys))
	for i, r := range keys {
		parts[i] = fmt.Sprintf("%d:%d/%d", r, rooms[r], n)
	}
	fmt.Printf("room_reach: %s\n", strings.Join(parts, " "))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, m[k])
	}
	return strings.Join(parts, ",")
}

func joinInts(vals []int) string {
	if len(vals) == 0 {
		return "none"
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ",")
}
