package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/delaneyj/figspec/figma"
	"github.com/delaneyj/figspec/preferences"
	"github.com/delaneyj/figspec/reactive"
	"github.com/delaneyj/figspec/tui"
	"github.com/delaneyj/figspec/viewer"
	"github.com/urfave/cli/v3"
)

func view(ctx context.Context, cmd *cli.Command) error {
	src, err := loadSource(cmd)
	if err != nil {
		return err
	}
	p, err := loadPreferences(cmd)
	if err != nil {
		return err
	}
	images, err := loadImages(cmd.String(imagesKey))
	if err != nil {
		return err
	}

	// the program runs on its own goroutine, so the runtime is explicit
	rt := reactive.NewRuntime()
	var prog *tea.Program
	// the callback runs inside Update, where a blocking Send would deadlock
	save := savePreferences(cmd, func(msg tea.Msg) { go prog.Send(msg) })

	var v interface {
		tui.Viewer
		Close()
	}
	if src.File != nil {
		fv := viewer.NewFileViewer(rt)
		fv.SetPreferences(p)
		fv.OnPreferencesUpdate = save
		fv.SetImages(images)
		fv.SetResponse(src.File)
		v = fv
	} else {
		fv := viewer.NewFrameViewer(rt)
		fv.SetPreferences(p)
		fv.OnPreferencesUpdate = save
		if n := figma.FindMainNode(src.Nodes); n != nil {
			fv.SetImage(images[n.ID])
		}
		fv.SetResponse(src.Nodes)
		v = fv
	}
	defer v.Close()

	m := tui.New(v)
	defer m.Close()
	prog = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if cmd.Bool(watchKey) {
		stop, err := watch(ctx, src.Path, src.Fingerprint, prog.Send)
		if err != nil {
			return err
		}
		defer stop()
	}

	_, err = prog.Run()
	return err
}

// savePreferences writes changed preferences back to the preferences file,
// when there is one. Failures are reported through send.
func savePreferences(cmd *cli.Command, send func(tea.Msg)) func(preferences.Preferences) {
	path := cmd.String(preferencesKey)
	return func(p preferences.Preferences) {
		if path == "" {
			return
		}
		if err := preferences.Save(path, p); err != nil {
			send(tui.ErrMsg{Err: err})
		}
	}
}

// loadImages maps node ids to the image files in dir. A file is named after
// its node id, with '-' standing in for ':' where the file system needs it.
func loadImages(dir string) (map[string]string, error) {
	images := map[string]string{}
	if dir == "" {
		return images, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read images: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		id := strings.TrimSuffix(name, filepath.Ext(name))
		id = strings.ReplaceAll(id, "-", ":")
		abs, err := filepath.Abs(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		images[id] = "file://" + filepath.ToSlash(abs)
	}
	return images, nil
}
