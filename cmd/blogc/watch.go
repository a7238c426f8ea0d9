package main

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

// runWatch rebuilds dst on every write to src, exiting only on a
// watcher setup failure or when the watcher's channels close. Build
// errors, including one from the initial build, are reported but do
// not stop watching.
func runWatch(src, dst string) error {
	if err := runBuild(src, dst); err != nil {
		fmt.Fprintf(os.Stderr, "blogc: initial build failed: %v\n", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return &cliError{kind: ExitIOError, err: err}
	}
	defer watcher.Close()

	if err := watcher.Add(src); err != nil {
		return &cliError{kind: ExitIOError, err: err}
	}

	fmt.Fprintf(os.Stderr, "blogc: watching %s\n", src)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := runBuild(src, dst); err != nil {
				fmt.Fprintf(os.Stderr, "blogc: build failed: %v\n", err)
				continue
			}
			fmt.Fprintf(os.Stderr, "blogc: rebuilt %s\n", dst)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "blogc: watch error: %v\n", err)
		}
	}
}
