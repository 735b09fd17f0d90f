package db

import (
	"database/sql"
	"fmt"
)

type seedExercise struct {
	id           string
	name         string
	description  string
	instructions string
	category     string
	difficulty   string
}

// defaultExercises is the built-in catalog loaded on first run. Seeding
// is skipped entirely once the catalog has any rows, so user edits and
// deletions survive restarts.
var defaultExercises = []seedExercise{
	{
		id:           "ex-chair-squats",
		name:         "Chair Squats",
		description:  "A lower-body strengthening exercise using a chair for support and guidance.",
		instructions: "Stand in front of a sturdy chair with feet shoulder-width apart. Slowly lower your hips back and down as if sitting in the chair. Lightly touch the seat, then press through your heels to stand back up. Repeat 8-12 times.",
		category:     "strength",
		difficulty:   "beginner",
	},
	{
		id:           "ex-wall-push-ups",
		name:         "Wall Push-ups",
		description:  "An upper-body exercise performed against a wall, easier on the joints than floor push-ups.",
		instructions: "Stand arm's length from a wall with palms flat against it at shoulder height. Bend your elbows to bring your chest toward the wall. Push back to the starting position. Repeat 10-15 times.",
		category:     "strength",
		difficulty:   "beginner",
	},
	{
		id:           "ex-heel-raises",
		name:         "Heel Raises",
		description:  "Strengthens calf muscles and improves balance by rising onto your toes.",
		instructions: "Stand behind a chair and hold the back for support. Slowly rise up onto your toes as high as comfortable. Hold for 2 seconds, then lower back down. Repeat 10-15 times.",
		category:     "strength",
		difficulty:   "beginner",
	},
	{
		id:           "ex-marching-in-place",
		name:         "Marching in Place",
		description:  "A gentle cardio exercise that raises your heart rate without impact.",
		instructions: "Stand tall with feet hip-width apart. Lift one knee toward your chest, then lower it. Alternate legs in a marching motion. Continue for 1-3 minutes at a comfortable pace.",
		category:     "cardio",
		difficulty:   "beginner",
	},
	{
		id:           "ex-seated-leg-raises",
		name:         "Seated Leg Raises",
		description:  "Strengthens the quadriceps while seated, ideal for those with limited mobility.",
		instructions: "Sit in a sturdy chair with feet flat on the floor. Slowly extend one leg out straight and hold for 3 seconds. Lower the leg back down. Repeat 10 times on each leg.",
		category:     "strength",
		difficulty:   "beginner",
	},
	{
		id:           "ex-arm-circles",
		name:         "Arm Circles",
		description:  "A shoulder flexibility exercise that warms up the upper body.",
		instructions: "Stand with arms extended straight out to the sides. Make small forward circles for 15 seconds. Reverse direction for another 15 seconds. Gradually increase circle size if comfortable.",
		category:     "flexibility",
		difficulty:   "beginner",
	},
	{
		id:           "ex-neck-stretches",
		name:         "Neck Stretches",
		description:  "Gentle stretches to relieve neck tension and improve range of motion.",
		instructions: "Sit or stand with good posture. Slowly tilt your head toward one shoulder and hold for 15 seconds. Return to centre, then tilt toward the other shoulder. Repeat 3 times on each side.",
		category:     "flexibility",
		difficulty:   "beginner",
	},
	{
		id:           "ex-ankle-rotations",
		name:         "Ankle Rotations",
		description:  "Improves ankle mobility and helps prevent stiffness.",
		instructions: "Sit in a chair and lift one foot slightly off the ground. Rotate your ankle clockwise 10 times. Rotate counter-clockwise 10 times. Switch to the other foot and repeat.",
		category:     "flexibility",
		difficulty:   "beginner",
	},
	{
		id:           "ex-standing-balance",
		name:         "Standing Balance",
		description:  "A single-leg balance hold that strengthens stabilizer muscles and reduces fall risk.",
		instructions: "Stand next to a chair or countertop for support. Lift one foot a few inches off the ground. Hold for 10-30 seconds, focusing on a fixed point ahead. Switch legs and repeat. Aim for 3 holds per side.",
		category:     "balance",
		difficulty:   "beginner",
	},
	{
		id:           "ex-shoulder-shrugs",
		name:         "Shoulder Shrugs",
		description:  "Relieves upper back tension by raising and lowering the shoulders.",
		instructions: "Stand or sit with arms at your sides. Raise both shoulders up toward your ears. Hold for 2 seconds, then relax them down. Repeat 10-15 times.",
		category:     "flexibility",
		difficulty:   "beginner",
	},
	{
		id:           "ex-bicep-curls",
		name:         "Bicep Curls (Light)",
		description:  "Arm strengthening using light weights or water bottles.",
		instructions: "Hold a light weight (1-3 lbs) or water bottle in each hand. Stand with arms at your sides, palms facing forward. Slowly curl the weights toward your shoulders. Lower back down with control. Repeat 10-12 times.",
		category:     "strength",
		difficulty:   "beginner",
	},
	{
		id:           "ex-toe-touches",
		name:         "Toe Touches",
		description:  "A standing forward bend to stretch the hamstrings and lower back.",
		instructions: "Stand with feet hip-width apart. Slowly bend forward at the hips, reaching toward your toes. Go only as far as comfortable, never force the stretch. Hold for 15 seconds, then slowly return to standing.",
		category:     "flexibility",
		difficulty:   "intermediate",
	},
	{
		id:           "ex-side-bends",
		name:         "Side Bends",
		description:  "Stretches the obliques and improves lateral flexibility.",
		instructions: "Stand with feet shoulder-width apart, one hand on your hip. Raise the other arm overhead. Slowly lean to the side of the hand on your hip. Hold for 10 seconds, return to centre, and switch sides. Repeat 5 times each.",
		category:     "flexibility",
		difficulty:   "beginner",
	},
	{
		id:           "ex-knee-lifts",
		name:         "Knee Lifts",
		description:  "A standing balance and cardio exercise that works the core and hip flexors.",
		instructions: "Stand tall, holding a chair or wall for support if needed. Lift one knee up toward your chest. Lower it slowly, then lift the other knee. Alternate for 1-2 minutes at a steady pace.",
		category:     "balance",
		difficulty:   "beginner",
	},
	{
		id:           "ex-hip-circles",
		name:         "Hip Circles",
		description:  "Loosens the hip joints and improves range of motion.",
		instructions: "Stand with feet shoulder-width apart, hands on hips. Make large, slow circles with your hips clockwise. Complete 10 circles, then reverse direction. Keep your upper body as still as possible.",
		category:     "balance",
		difficulty:   "beginner",
	},
}

// SeedDefaultExercises loads the built-in exercise list into an empty
// catalog. It is a no-op when any catalog row already exists.
func SeedDefaultExercises(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM exercise_catalog`).Scan(&count); err != nil {
		return fmt.Errorf("count exercise catalog: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, ex := range defaultExercises {
		if _, err := db.Exec(`
INSERT OR REPLACE INTO exercise_catalog(id, name, description, instructions, category, image_uri, difficulty_level, source)
VALUES(?, ?, ?, ?, ?, '', ?, 'default')
`, ex.id, ex.name, ex.description, ex.instructions, ex.category, ex.difficulty); err != nil {
			return fmt.Errorf("seed default exercise %s: %w", ex.id, err)
		}
	}
	return nil
}
