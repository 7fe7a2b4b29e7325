package core

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestRotateFourTimesIdentity(t *testing.T) {
	src := newTestMat(t, 12, 16)

	current := src.Clone()
	for i := 0; i < 4; i++ {
		next := Rotate(current, 90)
		current.Close()
		current = next
	}
	defer current.Close()

	if !matsEqual(src, current) {
		t.Error("four 90 degree rotations should restore the original image")
	}
}

func TestRotateSwapsDimensions(t *testing.T) {
	src := newTestMat(t, 10, 20)

	tests := []struct {
		angle    int
		wantRows int
		wantCols int
	}{
		{90, 20, 10},
		{180, 10, 20},
		{270, 20, 10},
	}

	for _, tt := range tests {
		out := Rotate(src, tt.angle)
		if out.Rows() != tt.wantRows || out.Cols() != tt.wantCols {
			t.Errorf("Rotate(%d): got %dx%d, want %dx%d",
				tt.angle, out.Cols(), out.Rows(), tt.wantCols, tt.wantRows)
		}
		out.Close()
	}
}

func TestRotateUnsupportedAngleIsNoOp(t *testing.T) {
	src := newTestMat(t, 8, 8)

	for _, angle := range []int{0, 45, -90, 360} {
		out := Rotate(src, angle)
		if !matsEqual(src, out) {
			t.Errorf("Rotate(%d) should leave pixels unchanged", angle)
		}
		out.Close()
	}
}

func TestFlipTwiceIdentity(t *testing.T) {
	src := newTestMat(t, 9, 13)

	for _, mode := range []string{"h", "v"} {
		once := Flip(src, mode)
		twice := Flip(once, mode)
		if !matsEqual(src, twice) {
			t.Errorf("Flip(%q) applied twice should restore the original", mode)
		}
		once.Close()
		twice.Close()
	}
}

func TestFlipUnknownModeIsVertical(t *testing.T) {
	src := newTestMat(t, 9, 13)

	vertical := Flip(src, "v")
	defer vertical.Close()
	unknown := Flip(src, "diagonal")
	defer unknown.Close()

	if !matsEqual(vertical, unknown) {
		t.Error("any mode other than \"h\" should flip top-bottom")
	}
}

func TestBlurKernelCoercion(t *testing.T) {
	src := newTestMat(t, 16, 16)

	tests := []struct {
		name      string
		kernel    int
		canonical int
	}{
		{"negative coerced to one", -3, 1},
		{"zero coerced to one", 0, 1},
		{"even bumped to next odd", 4, 5},
		{"larger even bumped", 6, 7},
		{"odd unchanged", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Blur(src, tt.kernel)
			defer got.Close()
			want := Blur(src, tt.canonical)
			defer want.Close()

			if !matsEqual(got, want) {
				t.Errorf("Blur(%d) should equal Blur(%d)", tt.kernel, tt.canonical)
			}
		})
	}
}

func TestBlurPreservesDimensions(t *testing.T) {
	src := newTestMat(t, 16, 24)

	out := Blur(src, 7)
	defer out.Close()

	if out.Rows() != 16 || out.Cols() != 24 {
		t.Errorf("dimensions: got %dx%d, want 24x16", out.Cols(), out.Rows())
	}
}

func TestGrayscaleKeepsThreeEqualChannels(t *testing.T) {
	src := newTestMat(t, 8, 8)

	out := Grayscale(src)
	defer out.Close()

	if out.Channels() != 3 {
		t.Fatalf("channels: got %d, want 3", out.Channels())
	}
	for y := 0; y < out.Rows(); y++ {
		for x := 0; x < out.Cols(); x++ {
			b := out.GetUCharAt(y, x*3)
			g := out.GetUCharAt(y, x*3+1)
			r := out.GetUCharAt(y, x*3+2)
			if b != g || g != r {
				t.Fatalf("pixel (%d,%d): channels %d/%d/%d differ after grayscale", x, y, b, g, r)
			}
		}
	}
}

func TestEdgeDetectBinaryOutput(t *testing.T) {
	// Left half black, right half white: one strong vertical edge.
	src := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 16, 16, gocv.MatTypeCV8UC3)
	defer src.Close()
	for y := 0; y < 16; y++ {
		for x := 8; x < 16; x++ {
			src.SetUCharAt(y, x*3, 255)
			src.SetUCharAt(y, x*3+1, 255)
			src.SetUCharAt(y, x*3+2, 255)
		}
	}

	out := EdgeDetect(src)
	defer out.Close()

	if out.Rows() != 16 || out.Cols() != 16 || out.Channels() != 3 {
		t.Fatalf("shape: got %dx%dx%d, want 16x16x3", out.Cols(), out.Rows(), out.Channels())
	}

	edges := 0
	for y := 0; y < out.Rows(); y++ {
		for x := 0; x < out.Cols(); x++ {
			v := out.GetUCharAt(y, x*3)
			if v != 0 && v != 255 {
				t.Fatalf("pixel (%d,%d): got %d, edge map must be binary", x, y, v)
			}
			if v == 255 {
				edges++
			}
		}
	}
	if edges == 0 {
		t.Error("expected the black/white boundary to produce edge pixels")
	}
}

func TestBrightnessAddsAndSaturates(t *testing.T) {
	tests := []struct {
		name  string
		base  float64
		value int
		want  uint8
	}{
		{"plain addition", 100, 30, 130},
		{"saturates high", 250, 20, 255},
		{"plain subtraction", 100, -30, 70},
		{"saturates low", 5, -20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newSolidMat(t, 4, 4, tt.base)
			out := Brightness(src, tt.value)
			defer out.Close()

			if got := out.GetUCharAt(0, 0); got != tt.want {
				t.Errorf("Brightness(%v, %d): got %d, want %d", tt.base, tt.value, got, tt.want)
			}
		})
	}
}

func TestContrastScalesAndSaturates(t *testing.T) {
	tests := []struct {
		name  string
		base  float64
		value float64
		want  uint8
	}{
		{"identity", 80, 1.0, 80},
		{"doubles", 50, 2.0, 100},
		{"saturates", 200, 2.0, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newSolidMat(t, 4, 4, tt.base)
			out := Contrast(src, tt.value)
			defer out.Close()

			if got := out.GetUCharAt(0, 0); got != tt.want {
				t.Errorf("Contrast(%v, %v): got %d, want %d", tt.base, tt.value, got, tt.want)
			}
		})
	}
}

func TestResizeRoundsDimensions(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		cols     int
		scale    float64
		wantRows int
		wantCols int
	}{
		{"half", 10, 10, 0.5, 5, 5},
		{"enlarge", 10, 10, 1.5, 15, 15},
		{"rounds up", 3, 3, 0.5, 2, 2},
		{"floor of one", 4, 4, 0.1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newTestMat(t, tt.rows, tt.cols)
			out := Resize(src, tt.scale)
			defer out.Close()

			if out.Rows() != tt.wantRows || out.Cols() != tt.wantCols {
				t.Errorf("Resize(%v): got %dx%d, want %dx%d",
					tt.scale, out.Cols(), out.Rows(), tt.wantCols, tt.wantRows)
			}
		})
	}
}

func TestResizeRoundTripRestoresDimensions(t *testing.T) {
	src := newTestMat(t, 12, 20)

	half := Resize(src, 0.5)
	defer half.Close()
	back := Resize(half, 2.0)
	defer back.Close()

	if back.Rows() != src.Rows() || back.Cols() != src.Cols() {
		t.Errorf("round trip dimensions: got %dx%d, want %dx%d",
			back.Cols(), back.Rows(), src.Cols(), src.Rows())
	}
}
