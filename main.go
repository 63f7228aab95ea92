package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/waddle/debug"
	"github.com/oomph-ac/waddle/flock"
	"github.com/oomph-ac/waddle/input"
	"github.com/oomph-ac/waddle/omath"
	"github.com/oomph-ac/waddle/recording"
	"github.com/oomph-ac/waddle/settings"
	"github.com/oomph-ac/waddle/sim"
	"github.com/oomph-ac/waddle/worker"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
)

// The following program drops a flock of penguins onto the built-in course, plays an input script for each
// of them and reports how they got on.
func main() {
	settingsPath := flag.String("settings", "waddle.toml", "path to the settings file, created with defaults if missing")
	ticks := flag.Int("ticks", -1, "number of ticks to simulate, overriding the settings file")
	record := flag.String("record", "", "path to write the recording of the first penguin to, overriding the settings file")
	flag.Parse()

	s, err := readSettings(*settingsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *ticks >= 0 {
		s.Runner.Ticks = *ticks
	}
	if *record != "" {
		s.Runner.RecordPath = *record
	}

	lg := logrus.New()
	lg.Formatter = &logrus.TextFormatter{ForceColors: true}
	lg.Level, _ = logrus.ParseLevel(s.Runner.LogLevel)

	if s.Runner.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: s.Runner.SentryDSN}); err != nil {
			lg.Errorf("unable to initialize sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}
	if s.Runner.StatsviewAddr != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(s.Runner.StatsviewAddr))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	if err := run(s, lg); err != nil {
		lg.Error(err)
		os.Exit(1)
	}
}

// readSettings loads the settings file at path, writing the defaults there first if it does not exist.
func readSettings(path string) (settings.Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := settings.SaveDefault(path); err != nil {
			return settings.Settings{}, err
		}
	}
	s, err := settings.Load(path)
	if err != nil {
		return settings.Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return settings.Settings{}, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}

// recorder passes input through while remembering the last snapshot handed out.
type recorder struct {
	src  flock.InputSource
	last input.Snapshot
}

func (r *recorder) Next() input.Snapshot {
	r.last = r.src.Next()
	return r.last
}

func run(s settings.Settings, lg *logrus.Logger) error {
	log := logrus.NewEntry(lg)
	opts := sim.OptionsFrom(s)
	dt := s.DT()
	simulator := sim.New(course())

	var script *input.Script
	if s.Runner.ScriptPath != "" {
		sc, err := settings.LoadScript(s.Runner.ScriptPath)
		if err != nil {
			return err
		}
		script = sc
	}

	var pool *worker.Pool
	if s.Runner.Parallel {
		pool = worker.NewPool(0, log.WithField("component", "worker"))
		defer pool.Close()
	}
	f := flock.New(simulator, pool, log.WithField("component", "flock"))

	var (
		rec      *recording.Recording
		first    *recorder
		recorded donburi.Entity
	)
	for i := 0; i < s.Runner.Characters; i++ {
		camera := 180 + float32(i%4-2)*10
		var src flock.InputSource = courseScript(camera)
		if script != nil {
			src = &input.Script{Steps: script.Steps}
		}

		name := fmt.Sprintf("penguin-%d", i)
		spawn := spawnPoint(i, opts.FootOffset)
		c := sim.NewCharacter(opts, spawn, camera)
		if i == 0 {
			if modes := s.DebugModes(); len(modes) > 0 {
				c.Dbg = debug.New(log.WithField("member", name))
				if err := c.Dbg.Enable(modes...); err != nil {
					return err
				}
			}
			first = &recorder{src: src}
			src = first
			rec = recording.New(recording.Header{Name: name, Spawn: spawn, Heading: camera, DT: dt})
			recorded = f.Add(name, c, src)
			continue
		}
		f.Add(name, c, src)
	}

	var (
		speeds, heights      []float64
		landings, niceCount  int
		landingAngles        []float64
		failures, slideTicks int
	)
	start := time.Now()
	for tick := 0; tick < s.Runner.Ticks; tick++ {
		failures += f.Step(dt)
		f.Each(func(m *flock.MemberData) {
			if m.Failed {
				return
			}
			ev := m.Last.Events
			if ev.Landed {
				landings++
				landingAngles = append(landingAngles, float64(ev.LandingAngle))
				if ev.NiceLanding {
					niceCount++
				}
			}
			if m.Last.Animation.IsSliding {
				slideTicks++
			}
			v := m.Last.Velocity
			speeds = append(speeds, float64(mgl32.Vec2{v.X(), v.Z()}.Len()))
			heights = append(heights, float64(m.Last.Position.Y()))
		})
		if rec != nil {
			if m, ok := f.Get(recorded); ok && !m.Failed {
				rec.Add(first.last, m.Last)
			}
		}
	}

	speed := omath.Summarize(speeds)
	angles := omath.Summarize(landingAngles)
	log.WithFields(logrus.Fields{
		"members":    f.Len(),
		"ticks":      s.Runner.Ticks,
		"elapsed":    time.Since(start).Round(time.Millisecond),
		"failures":   failures,
		"landings":   landings,
		"nice":       niceCount,
		"slideTicks": slideTicks,
	}).Info("run finished")
	log.WithFields(logrus.Fields{
		"mean":              fmt.Sprintf("%.3f", speed.Mean),
		"max":               fmt.Sprintf("%.3f", speed.Max),
		"stddev":            fmt.Sprintf("%.3f", speed.StdDev),
		"heightCorrelation": fmt.Sprintf("%.3f", omath.CorrelationCoefficient(speeds, heights)),
	}).Info("horizontal speed")
	if angles.Count > 0 {
		log.WithFields(logrus.Fields{
			"mean": fmt.Sprintf("%.1f", angles.Mean),
			"min":  fmt.Sprintf("%.1f", angles.Min),
			"max":  fmt.Sprintf("%.1f", angles.Max),
		}).Info("landing angles")
	}

	if rec == nil || s.Runner.RecordPath == "" {
		return nil
	}
	return saveRecording(s.Runner.RecordPath, rec, simulator, opts, log)
}

// saveRecording writes rec to path and replays it to make sure the run is reproducible.
func saveRecording(path string, rec *recording.Recording, s *sim.Simulator, opts sim.Options, log *logrus.Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create recording file: %w", err)
	}
	defer file.Close()
	if err := recording.Write(file, rec); err != nil {
		return err
	}

	if err := recording.Verify(rec, s, opts); err != nil {
		return fmt.Errorf("recording of %s does not replay: %w", rec.Header.Name, err)
	}
	log.WithFields(logrus.Fields{"path": path, "frames": len(rec.Frames)}).Info("recording saved and verified")
	return nil
}
