package weekimage

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/Freeeeeet/lesson_alert_bot/internal/controller/formatting"
	"github.com/Freeeeeet/lesson_alert_bot/internal/model"
	"github.com/Freeeeeet/lesson_alert_bot/internal/service"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontStyle определяет стиль шрифта
type FontStyle string

const (
	FontStyleDefault FontStyle = ""
	FontStyleBold    FontStyle = "bold"
)

// Константы размеров и отступов
const (
	imageWidth        = 1400
	imageHeight       = 900
	headerHeight      = 100
	leftLabelsWidth   = 80
	rightPadding      = 20
	dayPaddingX       = 8
	lessonRadius      = 6.0
	shadowOffset      = 3.0
	hourPaddingTop    = 1
	hourPaddingBottom = 1
	defaultMinHour    = 8
	defaultMaxHour    = 14
	minLessonHeight   = 12.0
)

// Константы шрифтов
const (
	titleFontSize     = 25.0
	dayFontSize       = 24.0
	hourLabelFontSize = 16.0
	lessonFontSize    = 15.0
)

// Цветовая схема
var (
	bgColor          = color.RGBA{245, 246, 248, 255}
	textColor        = color.RGBA{80, 85, 90, 220}
	hourLabelColor   = color.RGBA{110, 115, 120, 200}
	hourLineColor    = color.NRGBA{150, 150, 150, 255}
	todayBgColor     = color.NRGBA{255, 99, 71, 80}
	evenDayColor     = color.NRGBA{240, 240, 240, 255}
	oddDayColor      = color.NRGBA{220, 220, 220, 255}
	currentTimeColor = color.NRGBA{255, 80, 80, 200}

	lessonColor       = color.RGBA{133, 193, 85, 220}
	currentLessonClr  = color.RGBA{255, 182, 193, 255}
	lessonTextColor   = color.RGBA{20, 24, 28, 230}
	lessonShadowColor = color.RGBA{0, 0, 0, 20}
)

// displayOrder дни недели на картинке: с понедельника по воскресенье
var displayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

// hourRange содержит диапазон часов для отображения
type hourRange struct {
	start int
	end   int
	total int
}

// placedLesson урок с временем начала в секундах от полуночи
type placedLesson struct {
	lesson model.Lesson
	start  int
}

var (
	fontsMu     sync.Mutex
	cachedFonts = make(map[FontStyle]*opentype.Font)
)

// loadFont загружает шрифт Go указанного стиля или использует basicfont как fallback
func loadFont(dc *gg.Context, size float64, style FontStyle) {
	fontData := goregular.TTF
	if style == FontStyleBold {
		fontData = gobold.TTF
	}

	fontsMu.Lock()
	cachedFont, ok := cachedFonts[style]
	if !ok {
		parsedFont, err := opentype.Parse(fontData)
		if err != nil {
			fontsMu.Unlock()
			dc.SetFontFace(basicfont.Face7x13)
			return
		}
		cachedFonts[style] = parsedFont
		cachedFont = parsedFont
	}
	fontsMu.Unlock()

	face, err := opentype.NewFace(cachedFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		dc.SetFontFace(basicfont.Face7x13)
		return
	}
	dc.SetFontFace(face)
}

// Generate рисует недельное расписание в PNG. now подсвечивает сегодняшний день и текущее время.
func Generate(week model.Week, current *model.ResolvedLesson, now time.Time) ([]byte, error) {
	lessonsByDay, err := placeLessons(week)
	if err != nil {
		return nil, err
	}
	hours := calculateHourRange(lessonsByDay)

	dc := createCanvas()
	dayWidth := (imageWidth - leftLabelsWidth - rightPadding) / len(displayOrder)
	dayHeight := imageHeight - headerHeight
	cellHeight := float64(dayHeight) / float64(hours.total)

	drawHeader(dc, week)
	drawHourLabels(dc, hours, cellHeight)

	for dayIndex, weekday := range displayOrder {
		x := float64(leftLabelsWidth + dayIndex*dayWidth)
		y := float64(headerHeight)
		isToday := weekday == now.Weekday()

		drawDayBackground(dc, x, y, dayWidth, dayHeight, dayIndex, isToday)
		drawDayHeader(dc, weekday, x, y, dayWidth)
		drawHourLines(dc, x, y, dayWidth, hours, cellHeight)
		for _, pl := range lessonsByDay[weekday] {
			isCurrent := current != nil && current.Weekday == weekday && current.Lesson == pl.lesson
			drawLesson(dc, pl, x, y, dayWidth, hours, cellHeight, isCurrent)
		}
		if isToday {
			drawCurrentTimeLine(dc, now, x, dayWidth, hours, cellHeight)
		}
	}

	return encodeImage(dc)
}

// placeLessons группирует уроки по дням и переводит время в секунды
func placeLessons(week model.Week) (map[time.Weekday][]placedLesson, error) {
	lessonsByDay := make(map[time.Weekday][]placedLesson)
	for _, weekday := range displayOrder {
		for _, lesson := range week.Lessons(weekday) {
			start, err := service.ParseLessonTime(lesson.Time)
			if err != nil {
				return nil, fmt.Errorf("%s, lesson %d: %w", weekday, lesson.Position, err)
			}
			lessonsByDay[weekday] = append(lessonsByDay[weekday], placedLesson{lesson: lesson, start: start})
		}
	}
	return lessonsByDay, nil
}

// calculateHourRange определяет диапазон часов для отображения
func calculateHourRange(lessonsByDay map[time.Weekday][]placedLesson) hourRange {
	minHour := 24
	maxHour := 0
	lessonSeconds := int(model.LessonDuration / time.Second)

	for _, lessons := range lessonsByDay {
		for _, pl := range lessons {
			startH := pl.start / 3600
			end := pl.start + lessonSeconds
			endH := end / 3600
			if end%3600 > 0 {
				endH++
			}
			if startH < minHour {
				minHour = startH
			}
			if endH > maxHour {
				maxHour = endH
			}
		}
	}

	if minHour == 24 {
		minHour = defaultMinHour
		maxHour = defaultMaxHour
	}

	startHour := minHour - hourPaddingTop
	endHour := maxHour + hourPaddingBottom
	if startHour < 0 {
		startHour = 0
	}
	if endHour > 24 {
		endHour = 24
	}

	return hourRange{
		start: startHour,
		end:   endHour,
		total: endHour - startHour,
	}
}

// createCanvas создает новый контекст рисования с фоном
func createCanvas() *gg.Context {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()
	return dc
}

// drawHeader рисует заголовок
func drawHeader(dc *gg.Context, week model.Week) {
	title := fmt.Sprintf("Расписание уроков (%d)", week.Count())

	loadFont(dc, titleFontSize, FontStyleBold)
	dc.SetColor(textColor)
	_, h := dc.MeasureString(title)
	dc.DrawStringAnchored(title, float64(leftLabelsWidth), float64(headerHeight)/8+h/2, 0, 0)
}

// drawHourLabels рисует колонку с часами слева
func drawHourLabels(dc *gg.Context, hours hourRange, cellHeight float64) {
	loadFont(dc, hourLabelFontSize, FontStyleDefault)
	dc.SetColor(hourLabelColor)

	for hIdx := 0; hIdx <= hours.total; hIdx++ {
		y := float64(headerHeight) + float64(hIdx)*cellHeight
		label := fmt.Sprintf("%02d:00", hours.start+hIdx)
		dc.DrawStringAnchored(label, float64(leftLabelsWidth)-10, y, 1, 0.5)
	}
}

// drawDayBackground рисует фон дня
func drawDayBackground(dc *gg.Context, x, y float64, dayWidth, dayHeight, dayIndex int, isToday bool) {
	if isToday {
		dc.SetColor(todayBgColor)
	} else if dayIndex%2 == 0 {
		dc.SetColor(evenDayColor)
	} else {
		dc.SetColor(oddDayColor)
	}
	dc.DrawRectangle(x, y, float64(dayWidth), float64(dayHeight))
	dc.Fill()
}

// drawDayHeader рисует название дня недели
func drawDayHeader(dc *gg.Context, weekday time.Weekday, x, y float64, dayWidth int) {
	loadFont(dc, dayFontSize, FontStyleBold)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(formatting.GetWeekdayShort(weekday), x+float64(dayWidth)/2, y, 0.5, -0.4)
}

// drawHourLines рисует горизонтальные линии часов
func drawHourLines(dc *gg.Context, x, y float64, dayWidth int, hours hourRange, cellHeight float64) {
	dc.SetLineWidth(0.3)
	dc.SetColor(hourLineColor)

	for hIdx := 0; hIdx <= hours.total; hIdx++ {
		hy := y + float64(hIdx)*cellHeight
		dc.DrawLine(x, hy, x+float64(dayWidth), hy)
		dc.Stroke()
	}
}

// drawLesson рисует один урок
func drawLesson(dc *gg.Context, pl placedLesson, x, y float64, dayWidth int, hours hourRange, cellHeight float64, isCurrent bool) {
	lessonY, lessonHeight := lessonBlock(pl, y, hours, cellHeight)
	lessonWidth := float64(dayWidth) - float64(dayPaddingX*2)

	fillColor := lessonColor
	if isCurrent {
		fillColor = currentLessonClr
	}

	// Тень
	dc.SetColor(lessonShadowColor)
	dc.DrawRoundedRectangle(x+dayPaddingX+shadowOffset, lessonY+2+shadowOffset, lessonWidth, lessonHeight-4, lessonRadius)
	dc.Fill()

	// Основной блок
	dc.SetColor(fillColor)
	dc.DrawRoundedRectangle(x+dayPaddingX, lessonY+2, lessonWidth, lessonHeight-4, lessonRadius)
	dc.Fill()

	// Рамка
	dc.SetColor(darkenColor(fillColor, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x+dayPaddingX, lessonY+2, lessonWidth, lessonHeight-4, lessonRadius)
	dc.Stroke()

	loadFont(dc, lessonFontSize, FontStyleBold)
	dc.SetColor(lessonTextColor)
	txtX := x + dayPaddingX + 8
	txtY := lessonY + 8 + 10
	dc.DrawStringAnchored(fmt.Sprintf("%d. %s", pl.lesson.Position, pl.lesson.Time), txtX, txtY, 0, 0)

	if lessonHeight > 40 {
		loadFont(dc, lessonFontSize-2, FontStyleDefault)
		dc.DrawStringAnchored(truncate(pl.lesson.Subject, 18), txtX, txtY+16, 0, 0)
	}
}

// lessonBlock возвращает верх и высоту блока урока.
// Урок, который идёт после полуночи, обрезается по нижней границе сетки.
func lessonBlock(pl placedLesson, y float64, hours hourRange, cellHeight float64) (float64, float64) {
	startHour := float64(pl.start) / 3600
	top := y + (startHour-float64(hours.start))*cellHeight
	height := model.LessonDuration.Hours() * cellHeight

	gridBottom := y + float64(hours.total)*cellHeight
	if top+height > gridBottom {
		height = gridBottom - top
	}
	if height < minLessonHeight {
		height = minLessonHeight
		top = gridBottom - height
	}
	return top, height
}

// drawCurrentTimeLine рисует красную линию текущего времени в колонке сегодняшнего дня
func drawCurrentTimeLine(dc *gg.Context, now time.Time, x float64, dayWidth int, hours hourRange, cellHeight float64) {
	currentHour := float64(service.SecondsSinceMidnight(now)) / 3600
	if currentHour < float64(hours.start) || currentHour > float64(hours.end) {
		return
	}

	lineY := float64(headerHeight) + (currentHour-float64(hours.start))*cellHeight
	dc.SetColor(currentTimeColor)
	dc.SetLineWidth(2.0)
	dc.DrawLine(x, lineY, x+float64(dayWidth), lineY)
	dc.Stroke()
}

// darkenColor затемняет цвет на указанный множитель
func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// truncate обрезает текст по количеству символов
func truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen-3]) + "..."
}

// encodeImage кодирует изображение в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
