package timeline

// DefaultDayPadding is the number of days added on each side of a day-scale
// range so bars never touch the chart edges.
const DefaultDayPadding = 2

const (
	dayLabelLayout     = "01/02"
	monthLabelLayout   = "2006/01"
	captionLabelLayout = "2006/01/02"
)

// Task is the engine's view of a Gantt row. Only Start and End take part in
// the layout; the other fields are carried through for the caller.
type Task struct {
	ID       string
	Name     string
	Start    Date
	End      Date
	Progress int
	Color    string
}

// DateRange is the aligned window covering all tasks of one layout.
type DateRange struct {
	Min        Date
	Max        Date
	TotalUnits int
}

// Bar is the horizontal placement of one task as fractions of the range.
type Bar struct {
	TaskID string
	Offset float64
	Width  float64
}

// LeftPercent returns Offset as a percentage, ready for CSS-style left.
func (b Bar) LeftPercent() float64 { return b.Offset * 100 }

// WidthPercent returns Width as a percentage.
func (b Bar) WidthPercent() float64 { return b.Width * 100 }

// Result is a full chart layout. Bars follow the order of the input tasks.
type Result struct {
	Empty  bool
	Scale  Scale
	Range  DateRange
	Labels []string
	Bars   []Bar

	// TodayOffset is only meaningful when HasToday is true.
	TodayOffset float64
	HasToday    bool

	StartCaption string
	EndCaption   string
}

// Options tunes range alignment. The zero value has no day padding.
type Options struct {
	DayPadding int
}

// DefaultOptions returns the padding used by the package-level functions.
func DefaultOptions() Options {
	return Options{DayPadding: DefaultDayPadding}
}
