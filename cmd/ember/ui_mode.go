package main

// progressWanted решает, рисовать ли bubbletea-прогресс для decode.
// value is the --ui flag; the view goes to stderr, so auto asks whether
// stderr is a terminal. Одному файлу прогресс не нужен.
func progressWanted(value string, files int, stderrTTY bool) (bool, error) {
	mode, err := parseSwitch("ui", value)
	if err != nil {
		return false, err
	}
	return mode.resolve(files > 1 && stderrTTY), nil
}
