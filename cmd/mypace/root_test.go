package mypace

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCommand executes the root command in-process against a throwaway
// database and returns everything written to stdout/stderr.
func runCommand(t *testing.T, dbFile string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--db", dbFile}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInitIsIdempotent(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "mypace.db")

	out, err := runCommand(t, dbFile, "init")
	require.NoError(t, err)
	require.Contains(t, out, "Initialized mypace database")

	// Running init again must not fail or reset anything.
	_, err = runCommand(t, dbFile, "init")
	require.NoError(t, err)
}

func TestFoodAddListDelete(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "mypace.db")
	_, err := runCommand(t, dbFile, "init")
	require.NoError(t, err)

	out, err := runCommand(t, dbFile, "food", "add", "Oatmeal",
		"--date", "2026-03-10", "--meal", "breakfast", "--calories", "150", "--protein", "5")
	require.NoError(t, err)
	require.Contains(t, out, "Logged food entry 1")
	require.Contains(t, out, "Totals for 2026-03-10: 150 kcal")

	out, err = runCommand(t, dbFile, "food", "list", "--date", "2026-03-10")
	require.NoError(t, err)
	require.Contains(t, out, "Oatmeal")
	require.Contains(t, out, "[breakfast]")

	out, err = runCommand(t, dbFile, "food", "delete", "1", "--date", "2026-03-10")
	require.NoError(t, err)
	require.Contains(t, out, "Deleted food entry 1")
	require.Contains(t, out, "Totals for 2026-03-10: 0 kcal")

	// Deleting the same id again stays quiet.
	_, err = runCommand(t, dbFile, "food", "delete", "1", "--date", "2026-03-10")
	require.NoError(t, err)

	out, err = runCommand(t, dbFile, "food", "list", "--date", "2026-03-10")
	require.NoError(t, err)
	require.Contains(t, out, "No food logged for 2026-03-10")
}

func TestWalkLogAndProgramStatus(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "mypace.db")
	_, err := runCommand(t, dbFile, "init")
	require.NoError(t, err)

	_, err = runCommand(t, dbFile, "program", "reset")
	require.NoError(t, err)

	out, err := runCommand(t, dbFile, "walk", "log", "--minutes", "5")
	require.NoError(t, err)
	require.Contains(t, out, "Recorded")

	out, err = runCommand(t, dbFile, "program", "status")
	require.NoError(t, err)
	require.Contains(t, out, "Week 1")
	require.Contains(t, out, "Getting Started")
}

func TestExerciseCatalogAndLogging(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "mypace.db")
	_, err := runCommand(t, dbFile, "init")
	require.NoError(t, err)

	out, err := runCommand(t, dbFile, "exercise", "catalog")
	require.NoError(t, err)
	require.Contains(t, out, "Chair Squats")
	require.Contains(t, out, "ex-wall-push-ups")

	out, err = runCommand(t, dbFile, "exercise", "log", "ex-chair-squats",
		"--date", "2026-04-02", "--sets", "3", "--reps", "12")
	require.NoError(t, err)
	require.Contains(t, out, "Logged")

	out, err = runCommand(t, dbFile, "exercise", "list", "--date", "2026-04-02")
	require.NoError(t, err)
	require.Contains(t, out, "Chair Squats")
}

func TestSummaryCommand(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "mypace.db")
	_, err := runCommand(t, dbFile, "init")
	require.NoError(t, err)

	_, err = runCommand(t, dbFile, "food", "add", "Eggs",
		"--date", "2026-07-04", "--meal", "breakfast", "--calories", "500")
	require.NoError(t, err)
	_, err = runCommand(t, dbFile, "food", "add", "Toast",
		"--date", "2026-07-04", "--meal", "breakfast", "--calories", "300")
	require.NoError(t, err)

	out, err := runCommand(t, dbFile, "summary", "--date", "2026-07-04")
	require.NoError(t, err)
	require.Contains(t, out, "800")
}

func TestProfileSetSoftFailsOnBadGoal(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "mypace.db")
	_, err := runCommand(t, dbFile, "init")
	require.NoError(t, err)

	// A non-numeric goal keeps the previous value instead of failing.
	_, err = runCommand(t, dbFile, "profile", "set", "--calories", "abc")
	require.NoError(t, err)

	out, err := runCommand(t, dbFile, "profile", "show")
	require.NoError(t, err)
	require.Contains(t, out, "2000")
}

func TestInvalidDateIsRejected(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "mypace.db")
	_, err := runCommand(t, dbFile, "init")
	require.NoError(t, err)

	_, err = runCommand(t, dbFile, "food", "list", "--date", "03/10/2026")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid --date")
}
