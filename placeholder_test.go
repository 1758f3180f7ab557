package slidetree

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type geometry struct {
	Left, Top, Width, Height Length
	OK                       [4]bool
}

func geometryOf(s Shape) geometry {
	var g geometry
	g.Left, g.OK[0] = s.GetLeft()
	g.Top, g.OK[1] = s.GetTop()
	g.Width, g.OK[2] = s.GetWidth()
	g.Height, g.OK[3] = s.GetHeight()
	return g
}

func fullGeometry(x, y, cx, cy Length) geometry {
	return geometry{x, y, cx, cy, [4]bool{true, true, true, true}}
}

// inheritanceFixture builds the standard master, a layout over it and a slide
// over the layout.
func inheritanceFixture(t *testing.T, slideShapes []string, opts ...Option) (*SlideMaster, *SlideLayout, *Slide) {
	t.Helper()
	master := mustMaster(t, standardMasterXML(), opts...)
	layout := mustLayout(t, layoutXML(
		phSp(2, "Title 1", `type="title"`, ""),
		phSp(3, "Content Placeholder 2", `idx="10"`, xfrm(1000, 2000, 3000, 4000)),
		phSp(4, "Date Placeholder 3", `type="dt" sz="half" idx="13"`, ""),
		phSp(5, "Picture Placeholder 4", `type="pic" idx="14"`, ""),
	), master)
	slide := mustSlide(t, slideXML(slideShapes...), layout)
	return master, layout, slide
}

func TestSlidePlaceholderInheritsFromMasterThroughLayout(t *testing.T) {
	_, _, slide := inheritanceFixture(t, []string{phSp(2, "Title 1", `type="title"`, "")})

	title, ok := slide.Placeholders().GetByIdx(0)
	require.True(t, ok)

	want := fullGeometry(457200, 274638, 8229600, 1143000)
	if diff := cmp.Diff(want, geometryOf(title)); diff != "" {
		t.Errorf("title geometry mismatch (-want +got):\n%s", diff)
	}

	// the same values through the generic Shape view
	shape, err := slide.Shapes().Get(0)
	require.NoError(t, err)
	assert.Equal(t, want, geometryOf(shape))
}

func TestSlidePlaceholderInheritsFromLayout(t *testing.T) {
	_, _, slide := inheritanceFixture(t, []string{phSp(3, "Content 2", `idx="10"`, "")})

	body, ok := slide.Placeholders().GetByIdx(10)
	require.True(t, ok)
	assert.Equal(t, fullGeometry(1000, 2000, 3000, 4000), geometryOf(body))

	lp, ok := body.LayoutPlaceholder()
	require.True(t, ok)
	assert.Equal(t, 3, lp.GetShapeID())
}

func TestSlidePlaceholderPartialOverride(t *testing.T) {
	_, _, slide := inheritanceFixture(t, []string{
		phSp(3, "Content 2", `idx="10"`, `<a:xfrm><a:off x="5" y="6"/></a:xfrm>`),
	})

	body, ok := slide.Placeholders().GetByIdx(10)
	require.True(t, ok)
	assert.Equal(t, fullGeometry(5, 6, 3000, 4000), geometryOf(body))

	// the slide's own values win once set
	require.NoError(t, body.SetSize(Inch(1), Inch(2)))
	assert.Equal(t, fullGeometry(5, 6, 914400, 1828800), geometryOf(body))
}

func TestSlidePlaceholderWithoutLayoutMatch(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, _, slide := inheritanceFixture(t, []string{phSp(7, "Orphan 6", `type="body" idx="99"`, "")},
		WithLogger(logger))

	orphan, ok := slide.Placeholders().GetByIdx(99)
	require.True(t, ok)
	assert.Equal(t, geometry{}, geometryOf(orphan))

	_, ok = orphan.LayoutPlaceholder()
	assert.False(t, ok)
	_, ok = orphan.MasterPlaceholder()
	assert.False(t, ok)
	assert.Equal(t, []string{"*slidetree.SlidePlaceholder"}, typeNames(orphan.Chain()))

	assert.Contains(t, buf.String(), `msg="no layout placeholder for slide placeholder"`)
	assert.Contains(t, buf.String(), "idx=99")
	assert.Contains(t, buf.String(), "shape_id=7")
}

func TestSlidePlaceholderWithoutLayout(t *testing.T) {
	slide := mustSlide(t, slideXML(phSp(2, "Title 1", `type="title"`, xfrm(1, 2, 3, 4)),
		phSp(3, "Body 2", `idx="1"`, "")), nil)

	title, ok := slide.Placeholders().GetByIdx(0)
	require.True(t, ok)
	assert.Equal(t, fullGeometry(1, 2, 3, 4), geometryOf(title))

	body, ok := slide.Placeholders().GetByIdx(1)
	require.True(t, ok)
	assert.Equal(t, geometry{}, geometryOf(body))
	_, ok = body.LayoutPlaceholder()
	assert.False(t, ok)
	assert.Nil(t, slide.GetSlideLayout())
}

func TestLayoutPlaceholderMasterMatching(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	master, layout, _ := inheritanceFixture(t, nil, WithLogger(logger))
	assert.Same(t, master, layout.GetSlideMaster())

	phs := layout.Placeholders()
	cases := []struct {
		idx        int
		wantMaster int
	}{
		{0, 2},  // title by idx
		{10, 3}, // obj falls back to the body placeholder
		{13, 4}, // dt by type
		{14, 3}, // pic falls back to the body placeholder
	}
	for _, tc := range cases {
		lp, ok := phs.GetByIdx(tc.idx)
		require.True(t, ok, "idx %d", tc.idx)
		mp, ok := lp.MasterPlaceholder()
		require.True(t, ok, "idx %d", tc.idx)
		assert.Equal(t, tc.wantMaster, mp.GetShapeID(), "idx %d", tc.idx)
		assert.Same(t, master, mp.GetSlideMaster())
	}

	date, _ := phs.GetByIdx(13)
	left, ok := date.GetLeft()
	require.True(t, ok)
	assert.Equal(t, Length(457200), left)
	width, _ := date.GetWidth()
	assert.Equal(t, Length(2133600), width)

	assert.Contains(t, buf.String(), `msg="master placeholder matched by type"`)
	assert.Contains(t, buf.String(), "type=dt")
	assert.Contains(t, buf.String(), "master_shape_id=4")
}

func TestLayoutPlaceholderPrefersIdxOverType(t *testing.T) {
	master := mustMaster(t, standardMasterXML())
	layout := mustLayout(t, layoutXML(phSp(2, "Subtitle 1", `type="subTitle" idx="2"`, "")), master)

	lp, ok := layout.Placeholders().GetByIdx(2)
	require.True(t, ok)
	mp, ok := lp.MasterPlaceholder()
	require.True(t, ok)
	assert.Equal(t, PlaceholderDate, mp.GetPlaceholderType())
}

func TestLayoutPlaceholderTypeTieBreak(t *testing.T) {
	master := mustMaster(t, masterXML(
		phSp(2, "Title 1", `type="title"`, ""),
		phSp(3, "Body A", `type="body" idx="1"`, xfrm(10, 10, 10, 10)),
		phSp(4, "Body B", `type="body" idx="5"`, xfrm(20, 20, 20, 20)),
	))
	layout := mustLayout(t, layoutXML(phSp(2, "Table 1", `type="tbl" idx="20"`, "")), master)

	lp, ok := layout.Placeholders().GetByIdx(20)
	require.True(t, ok)
	mp, ok := lp.MasterPlaceholder()
	require.True(t, ok)
	assert.Equal(t, "Body A", mp.GetName())
	assert.Equal(t, fullGeometry(10, 10, 10, 10), geometryOf(lp))
}

func TestLayoutPlaceholderWithoutMaster(t *testing.T) {
	layout := mustLayout(t, lytShapesXML(), nil)

	title, ok := layout.Placeholders().GetByIdx(0)
	require.True(t, ok)
	_, ok = title.MasterPlaceholder()
	assert.False(t, ok)
	assert.Equal(t, geometry{}, geometryOf(title))
	assert.Len(t, title.Chain(), 1)

	master := mustMaster(t, masterXML(phSp(2, "Footer 1", `type="ftr" idx="3"`, "")))
	layout = mustLayout(t, lytShapesXML(), master)
	title, _ = layout.Placeholders().GetByIdx(0)
	_, ok = title.MasterPlaceholder()
	assert.False(t, ok)
}

func TestPlaceholderDefaults(t *testing.T) {
	slide := mustSlide(t, slideXML(phSp(2, "Content 1", "", "")), nil)

	ph, err := slide.Placeholders().Get(0)
	require.NoError(t, err)
	assert.Equal(t, 0, ph.GetIdx())
	assert.Equal(t, PlaceholderObject, ph.GetPlaceholderType())
	assert.Equal(t, PlaceholderOrientHorizontal, ph.GetOrient())
	assert.Equal(t, PlaceholderSizeFull, ph.GetSize())
	assert.Equal(t, ShapeTypePlaceholder, ph.GetType())

	vert := mustSlide(t, slideXML(phSp(2, "Vertical 1", `type="body" orient="vert" sz="quarter" idx="4"`, "")), nil)
	ph, err = vert.Placeholders().Get(0)
	require.NoError(t, err)
	assert.Equal(t, 4, ph.GetIdx())
	assert.Equal(t, PlaceholderBody, ph.GetPlaceholderType())
	assert.Equal(t, PlaceholderOrientVertical, ph.GetOrient())
	assert.Equal(t, PlaceholderSizeQuarter, ph.GetSize())
}

func TestPlaceholderChainAndEffectiveFill(t *testing.T) {
	master := mustMaster(t, masterXML(
		phSp(2, "Title 1", `type="title"`,
			masterTitleXfrm+`<a:solidFill><a:schemeClr val="accent1"/></a:solidFill>`),
		phSp(3, "Body 2", `type="body" idx="1"`, masterBodyXfrm),
	))
	layout := mustLayout(t, layoutXML(
		phSp(2, "Title 1", `type="title"`, ""),
		phSp(3, "Body 2", `type="body" idx="1"`, `<a:gradFill/>`),
	), master)
	slide := mustSlide(t, slideXML(
		phSp(2, "Title 1", `type="title"`, ""),
		phSp(3, "Body 2", `type="body" idx="1"`, ""),
		phSp(4, "Title copy", `type="title"`, `<a:noFill/>`),
	), layout)

	title, err := slide.Placeholders().Get(0)
	require.NoError(t, err)
	chain := title.Chain()
	want := []string{"*slidetree.SlidePlaceholder", "*slidetree.LayoutPlaceholder", "*slidetree.MasterPlaceholder"}
	if diff := cmp.Diff(want, typeNames(chain)); diff != "" {
		t.Errorf("chain mismatch (-want +got):\n%s", diff)
	}

	fill, source, ok := title.EffectiveFill()
	require.True(t, ok)
	assert.Equal(t, FillSolid, fill.GetType())
	assert.IsType(t, &MasterPlaceholder{}, source)
	color, err := fill.ForeColor()
	require.NoError(t, err)
	theme, ok := color.GetThemeColor()
	require.True(t, ok)
	assert.Equal(t, ThemeColorAccent1, theme)

	// the lookup leaves unspecified tiers untouched
	assert.Equal(t, FillUnspecified, title.GetFill().GetType())

	body, err := slide.Placeholders().Get(1)
	require.NoError(t, err)
	fill, source, ok = body.EffectiveFill()
	require.True(t, ok)
	assert.Equal(t, FillGradient, fill.GetType())
	assert.IsType(t, &LayoutPlaceholder{}, source)

	override, err := slide.Placeholders().Get(2)
	require.NoError(t, err)
	fill, source, ok = override.EffectiveFill()
	require.True(t, ok)
	assert.Equal(t, FillBackground, fill.GetType())
	assert.Same(t, override.Element(), source.Element())

	layoutTitle, _ := layout.Placeholders().GetByIdx(0)
	fill, source, ok = layoutTitle.EffectiveFill()
	require.True(t, ok)
	assert.Equal(t, FillSolid, fill.GetType())
	assert.Equal(t, "Title 1", source.GetName())
}

func TestEffectiveFillNone(t *testing.T) {
	_, _, slide := inheritanceFixture(t, []string{phSp(2, "Title 1", `type="title"`, "")})

	title, err := slide.Placeholders().Get(0)
	require.NoError(t, err)
	fill, source, ok := title.EffectiveFill()
	assert.False(t, ok)
	assert.Nil(t, fill)
	assert.Nil(t, source)
}

func TestMasterPlaceholderEffectiveFill(t *testing.T) {
	master := mustMaster(t, masterXML(
		phSp(2, "Title 1", `type="title"`,
			masterTitleXfrm+`<a:solidFill><a:srgbClr val="3C2F80"/></a:solidFill>`),
		phSp(3, "Body 2", `type="body" idx="1"`, masterBodyXfrm),
	))

	title, ok := master.Placeholders().GetByType(PlaceholderTitle)
	require.True(t, ok)
	assert.Equal(t, []Placeholder{title}, title.Chain())
	fill, source, ok := title.EffectiveFill()
	require.True(t, ok)
	assert.Equal(t, FillSolid, fill.GetType())
	assert.Same(t, title.Element(), source.Element())

	body, ok := master.Placeholders().GetByIdx(1)
	require.True(t, ok)
	fill, source, ok = body.EffectiveFill()
	assert.False(t, ok)
	assert.Nil(t, fill)
	assert.Nil(t, source)
}

func TestGroupMemberPlaceholder(t *testing.T) {
	group := `<p:grpSp><p:nvGrpSpPr><p:cNvPr id="7" name="Group 6"/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/>` +
		phSp(8, "Content Placeholder 7", `idx="10"`, "") + autoSp(9, "Rectangle 8", "") + `</p:grpSp>`
	_, _, slide := inheritanceFixture(t, []string{group})

	shape, err := slide.Shapes().Get(0)
	require.NoError(t, err)
	g, ok := shape.(*GroupShape)
	require.True(t, ok)
	assert.Equal(t, []string{"*slidetree.SlidePlaceholder", "*slidetree.AutoShape"},
		typeNames(slices.Collect(g.Shapes().All())))

	member, ok := slide.GetShapeByID(8)
	require.True(t, ok)
	ph, ok := member.(*SlidePlaceholder)
	require.True(t, ok)
	lp, ok := ph.LayoutPlaceholder()
	require.True(t, ok)
	assert.Equal(t, 3, lp.GetShapeID())
	assert.Equal(t, fullGeometry(1000, 2000, 3000, 4000), geometryOf(ph))

	// placeholder collections list direct children of the shape tree only
	assert.Equal(t, 0, slide.Placeholders().Len())

	// a group wrapped outside any part falls back to plain shapes
	loose := &GroupShape{BaseShape: BaseShape{element: g.Element()}}
	first, err := loose.Shapes().Get(0)
	require.NoError(t, err)
	assert.IsType(t, &AutoShape{}, first)
}

func TestLoggerInheritance(t *testing.T) {
	var masterBuf, slideBuf bytes.Buffer
	debug := &slog.HandlerOptions{Level: slog.LevelDebug}
	master := mustMaster(t, standardMasterXML(), WithLogger(slog.New(slog.NewTextHandler(&masterBuf, debug))))
	layout := mustLayout(t, lytShapesXML(), master)
	slide := mustSlide(t, slideXML(phSp(2, "Body", `idx="42"`, "")), layout,
		WithLogger(slog.New(slog.NewTextHandler(&slideBuf, debug))))

	ph, err := slide.Placeholders().Get(0)
	require.NoError(t, err)
	_, ok := ph.LayoutPlaceholder()
	assert.False(t, ok)
	assert.Contains(t, slideBuf.String(), "idx=42")
	assert.Empty(t, masterBuf.String())

	// the layout shares the master's logger
	body, _ := layout.Placeholders().GetByIdx(10)
	_, ok = body.MasterPlaceholder()
	assert.True(t, ok)
	assert.Contains(t, masterBuf.String(), "matched by type")
}
