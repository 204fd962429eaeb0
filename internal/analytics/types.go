package analytics

import (
	"time"

	"ai-task-assistant/internal/model"
)

// TimeSlot is a part of the day, bucketed by the due hour.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"   // 06:00-12:00
	SlotAfternoon TimeSlot = "afternoon" // 12:00-18:00
	SlotEvening   TimeSlot = "evening"   // 18:00-24:00
	SlotNight     TimeSlot = "night"     // 00:00-06:00
)

// TimeSlots lists every slot in reporting order.
var TimeSlots = []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening, SlotNight}

// Thresholds used by the category patterns.
const (
	PostponedRateBelow = 50.0
	EasyRateAtLeast    = 70.0
	MinCategorySamples = 2

	UrgentWithinDays   = 2
	UpcomingWithinDays = 3
)

// Bucket is a total/completed tally with its formatted completion rate.
type Bucket struct {
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Rate      string `json:"rate"`
}

type PriorityStat struct {
	Priority model.Priority `json:"priority"`
	Bucket
}

type CategoryStat struct {
	Category model.Category `json:"category"`
	Bucket
}

// SlotStat tallies one time slot. Pending counts incomplete tasks only.
type SlotStat struct {
	Slot    TimeSlot `json:"slot"`
	Pending int      `json:"pending"`
	Bucket
}

type WeekdayStat struct {
	Weekday time.Weekday `json:"-"`
	Name    string       `json:"weekday"`
	Bucket
}

// Productive names the best slot or weekday with its raw completion rate.
type Productive struct {
	Label     string  `json:"label"`
	Rate      float64 `json:"rate"`
	Completed int     `json:"completed"`
}

type OverdueTask struct {
	Title       string         `json:"title"`
	DaysOverdue int            `json:"days_overdue"`
	Category    model.Category `json:"category"`
}

type UpcomingTask struct {
	Title     string `json:"title"`
	DaysUntil int    `json:"days_until"`
}

// Item is one task as the summary prompt lists it.
type Item struct {
	Title     string         `json:"title"`
	Completed bool           `json:"completed"`
	Overdue   bool           `json:"overdue"`
	Priority  model.Priority `json:"priority"`
	Category  model.Category `json:"category"`
	DueDate   string         `json:"due_date"`
	DaysUntil int            `json:"days_until"`
}

// Snapshot is every statistic derived from one task collection at one instant.
type Snapshot struct {
	Period      model.Period `json:"period"`
	GeneratedAt time.Time    `json:"generated_at"`
	Empty       bool         `json:"empty"`
	Message     string       `json:"message,omitempty"`

	Total          int    `json:"total"`
	Completed      int    `json:"completed"`
	Incomplete     int    `json:"incomplete"`
	InProgress     int    `json:"in_progress"`
	CompletionRate string `json:"completion_rate"`

	Priorities []PriorityStat `json:"priorities"`
	Categories []CategoryStat `json:"categories"`

	// Completed tasks carry no completion timestamp, so every completed task
	// counts as on time.
	OnTimeCompleted int    `json:"on_time_completed"`
	OnTimeRate      string `json:"on_time_rate"`

	Overdue  []OverdueTask  `json:"overdue"`
	Urgent   []string       `json:"urgent"`
	Upcoming []UpcomingTask `json:"upcoming"`

	TimeSlots             []SlotStat    `json:"time_slots"`
	MostProductiveSlot    *Productive   `json:"most_productive_slot,omitempty"`
	Weekdays              []WeekdayStat `json:"weekdays"`
	MostProductiveWeekday *Productive   `json:"most_productive_weekday,omitempty"`

	PostponedCategories []model.Category `json:"postponed_categories"`
	EasyCategories      []model.Category `json:"easy_categories"`

	Items []Item `json:"items"`
}
