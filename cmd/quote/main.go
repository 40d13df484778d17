package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/lingua-booking/internal/app/booking/domain"
	"github.com/light-bringer/lingua-booking/internal/app/booking/presenter"
	"github.com/light-bringer/lingua-booking/internal/config"
	"github.com/light-bringer/lingua-booking/internal/pkg/logger"
	"github.com/light-bringer/lingua-booking/internal/services"
)

const usage = `usage:
  quote course -id N [-date YYYY-MM-DD -time HH:MM] [-persons N] [-options a,b] [-auto]
  quote tutor  -id N [-hours N] [-persons N]`

var errUsage = errors.New(usage)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zl := zap.NewNop()
	if os.Getenv("QUOTE_DEBUG") != "" {
		if zl, err = logger.New(cfg.Environment); err != nil {
			return err
		}
	}

	opts, err := services.NewServiceOptions(cfg, zl)
	if err != nil {
		return err
	}
	defer opts.Close()

	switch args[0] {
	case "course":
		return courseCommand(ctx, opts, args[1:], stdout)
	case "tutor":
		return tutorCommand(ctx, opts, args[1:], stdout)
	default:
		return errUsage
	}
}

func courseCommand(ctx context.Context, opts *services.ServiceOptions, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("course", flag.ContinueOnError)
	id := fs.Int64("id", 0, "course id")
	date := fs.String("date", "", "start date, YYYY-MM-DD")
	at := fs.String("time", "", "start time, HH:MM")
	persons := fs.Int("persons", 1, "number of persons")
	options := fs.String("options", "", "comma separated options: "+strings.Join(domain.OptionNames, ", "))
	auto := fs.Bool("auto", false, "switch on the options implied by date, persons and intensity")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errUsage
	}

	course, err := opts.Gateway.GetCourse(ctx, *id)
	if err != nil {
		return err
	}

	form := presenter.NewCourseForm(course, opts.CourseEngine, opts.Formatter)
	if *date != "" {
		day, err := time.ParseInLocation(time.DateOnly, *date, opts.Clock.Now().Location())
		if err != nil {
			return fmt.Errorf("invalid -date: %w", err)
		}
		form.SelectDate(day)
	}
	if *at != "" {
		tod, err := domain.ParseTimeOfDay(*at)
		if err != nil {
			return err
		}
		if err := form.SelectTime(tod); err != nil {
			return err
		}
	}
	form.SetPersons(*persons)
	for _, name := range splitList(*options) {
		if err := form.Toggle(name, true); err != nil {
			return err
		}
	}
	if *auto {
		form.ApplyAutomaticOptions(opts.Clock.Now())
	}

	return renderCourse(w, course, form, opts.Formatter)
}

func tutorCommand(ctx context.Context, opts *services.ServiceOptions, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("tutor", flag.ContinueOnError)
	id := fs.Int64("id", 0, "tutor id")
	hours := fs.Int("hours", presenter.DefaultTutorHours, "session hours")
	persons := fs.Int("persons", 1, "number of persons")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errUsage
	}

	tutor, err := opts.Gateway.GetTutor(ctx, *id)
	if err != nil {
		return err
	}

	form := presenter.NewTutorForm(tutor, opts.TutorEngine, opts.Formatter)
	form.SetDuration(*hours)
	form.SetPersons(*persons)

	return renderTutor(w, tutor, form)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func renderCourse(w io.Writer, course *domain.Course, form *presenter.CourseForm, format *presenter.Formatter) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Course:\t%s (%s, %s)\n", course.Name, course.Level, course.Teacher)

	input := form.Input()
	if input.StartDate.IsZero() {
		dates := make([]string, 0, len(form.AvailableDates()))
		for _, d := range form.AvailableDates() {
			dates = append(dates, format.Date(d))
		}
		fmt.Fprintf(tw, "Start dates:\t%s\n", strings.Join(dates, ", "))
	} else {
		start := format.Date(input.StartDate)
		if input.StartTime != nil {
			start += " " + input.StartTime.String()
		} else {
			slots := make([]string, 0, len(form.TimeSlots()))
			for _, s := range form.TimeSlots() {
				slots = append(slots, s.String())
			}
			fmt.Fprintf(tw, "Time slots:\t%s\n", strings.Join(slots, ", "))
		}
		fmt.Fprintf(tw, "Start:\t%s\n", start)
		fmt.Fprintf(tw, "Ends:\t%s\n", form.EndDateLabel())
	}

	fmt.Fprintf(tw, "Persons:\t%d\n", input.PersonCount)
	if enabled := input.Options.Enabled(); len(enabled) > 0 {
		fmt.Fprintf(tw, "Options:\t%s\n", strings.Join(enabled, ", "))
	}
	if res, err := form.Result(); err == nil {
		fmt.Fprintf(tw, "Rules:\t%s\n", strings.Join(res.AppliedRules, ", "))
	}
	fmt.Fprintf(tw, "Total:\t%s\n", form.PriceLabel())
	return tw.Flush()
}

func renderTutor(w io.Writer, tutor *domain.Tutor, form *presenter.TutorForm) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	input := form.Input()
	fmt.Fprintf(tw, "Tutor:\t%s (%s)\n", tutor.Name, tutor.LanguageLevel)
	fmt.Fprintf(tw, "Languages:\t%s\n", strings.Join(tutor.LanguagesOffered, ", "))
	fmt.Fprintf(tw, "Rate:\t%s\n", form.RateLabel())
	fmt.Fprintf(tw, "Hours:\t%d\n", input.DurationHours)
	fmt.Fprintf(tw, "Persons:\t%d\n", input.PersonCount)
	fmt.Fprintf(tw, "Total:\t%s\n", form.PriceLabel())
	return tw.Flush()
}
