package reader

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/achilleasa/polaris-cpu/asset"
	"github.com/achilleasa/polaris-cpu/asset/scene"
	"github.com/achilleasa/polaris-cpu/log"
	"github.com/achilleasa/polaris-cpu/types"
)

type textSceneReader struct {
	logger log.Logger

	// The parsed scene.
	def *scene.Definition

	// Defined material names.
	materials map[string]struct{}

	// Resources currently being parsed; used to detect include cycles.
	openResources map[string]bool

	// An error stack that provides additional error information when
	// scene files include other files.
	errStack []string
}

// Create a new text scene reader.
func newTextSceneReader() *textSceneReader {
	return &textSceneReader{
		logger:        log.New("text scene reader"),
		def:           &scene.Definition{},
		materials:     make(map[string]struct{}),
		openResources: make(map[string]bool),
		errStack:      make([]string, 0),
	}
}

// Read scene definition.
func (r *textSceneReader) Read(sceneRes *asset.Resource) (*scene.Definition, error) {
	r.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	err := r.parse(sceneRes)
	if err != nil {
		return nil, err
	}

	r.logger.Infof("parsed %d material(s) and %d object(s) in %d ms", len(r.def.Materials), len(r.def.Objects), time.Since(start).Nanoseconds()/1e6)
	return r.def, nil
}

// Generate an error message that includes the include stack.
func (r *textSceneReader) emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)
	return fmt.Errorf("%s", strings.Trim(
		fmt.Sprintf("[%s: %d] error: %s\n%s", file, line, msg, strings.Join(r.errStack, "\n")),
		"\n",
	))
}

func (r *textSceneReader) pushFrame(msg string) {
	r.errStack = append([]string{msg}, r.errStack...)
}

func (r *textSceneReader) popFrame() {
	r.errStack = r.errStack[1:]
}

func (r *textSceneReader) parse(res *asset.Resource) error {
	r.openResources[res.Path()] = true
	defer delete(r.openResources, res.Path())

	var lineNum int
	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		var err error
		switch lineTokens[0] {
		case "include":
			err = r.parseInclude(res, lineNum, lineTokens)
			if err != nil {
				// Errors from included resources are already annotated
				return err
			}
			continue
		case "camera":
			err = r.parseCamera(lineTokens)
		case "sky":
			err = r.parseSky(lineTokens)
		case "material":
			err = r.parseMaterial(lineTokens)
		case "sphere", "plane", "box":
			err = r.parseObject(lineTokens)
		default:
			err = fmt.Errorf(`unknown directive "%s"`, lineTokens[0])
		}

		if err != nil {
			return r.emitError(res.Path(), lineNum, "%s", err.Error())
		}
	}

	if err := scanner.Err(); err != nil {
		return r.emitError(res.Path(), lineNum, "%s", err.Error())
	}
	return nil
}

func (r *textSceneReader) parseInclude(res *asset.Resource, lineNum int, lineTokens []string) error {
	if len(lineTokens) != 2 {
		return r.emitError(res.Path(), lineNum, `unsupported syntax for "include"; expected 1 argument; got %d`, len(lineTokens)-1)
	}

	incRes, err := asset.NewResource(lineTokens[1], res)
	if err != nil {
		return r.emitError(res.Path(), lineNum, "%s", err.Error())
	}
	defer incRes.Close()

	if r.openResources[incRes.Path()] {
		return r.emitError(res.Path(), lineNum, `include cycle detected for "%s"`, incRes.Path())
	}

	r.pushFrame(fmt.Sprintf("referenced from %s:%d [include]", res.Path(), lineNum))
	if err = r.parse(incRes); err != nil {
		return err
	}
	r.popFrame()
	return nil
}

// camera px py pz roll pitch yaw hfov
func (r *textSceneReader) parseCamera(lineTokens []string) error {
	args, err := parseFloats(lineTokens[0], lineTokens[1:], 7)
	if err != nil {
		return err
	}
	if args[6] <= 0 || args[6] >= 180 {
		return fmt.Errorf("camera fov must be in the (0, 180) range; got %g", args[6])
	}

	r.def.Camera = scene.CameraDef{
		Position: types.XYZ(args[0], args[1], args[2]),
		Rotation: types.XYZ(args[3], args[4], args[5]),
		FOV:      args[6],
	}
	return nil
}

// sky hr hg hb zr zg zb
func (r *textSceneReader) parseSky(lineTokens []string) error {
	args, err := parseFloats(lineTokens[0], lineTokens[1:], 6)
	if err != nil {
		return err
	}

	r.def.Sky = &scene.SkyDef{
		Horizon: types.RGB(args[0], args[1], args[2]),
		Zenith:  types.RGB(args[3], args[4], args[5]),
	}
	return nil
}

// material name r g b smoothness [er eg eb strength]
func (r *textSceneReader) parseMaterial(lineTokens []string) error {
	if len(lineTokens) < 2 {
		return fmt.Errorf(`unsupported syntax for "material"; expected a material name`)
	}

	name := lineTokens[1]
	if _, exists := r.materials[name]; exists {
		return fmt.Errorf(`material "%s" already defined`, name)
	}

	args, err := parseFloats(lineTokens[0], lineTokens[2:], 4, 8)
	if err != nil {
		return err
	}
	if args[3] < 0 || args[3] > 1 {
		return fmt.Errorf("material smoothness must be in the [0, 1] range; got %g", args[3])
	}

	mat := scene.MaterialDef{
		Name:       name,
		Color:      types.RGB(args[0], args[1], args[2]),
		Smoothness: args[3],
	}
	if len(args) == 8 {
		if args[7] < 0 {
			return fmt.Errorf("material emission strength must not be negative; got %g", args[7])
		}
		mat.EmissionColor = types.RGB(args[4], args[5], args[6])
		mat.EmissionStrength = args[7]
	}

	r.materials[name] = struct{}{}
	r.def.Materials = append(r.def.Materials, mat)
	return nil
}

// sphere mat cx cy cz radius
// plane mat px py pz nx ny nz
// box mat cx cy cz sx sy sz [roll pitch yaw]
func (r *textSceneReader) parseObject(lineTokens []string) error {
	if len(lineTokens) < 2 {
		return fmt.Errorf(`unsupported syntax for "%s"; expected a material name`, lineTokens[0])
	}

	matName := lineTokens[1]
	if _, exists := r.materials[matName]; !exists {
		return fmt.Errorf(`undefined material with name "%s"`, matName)
	}

	obj := scene.ObjectDef{Material: matName}
	switch lineTokens[0] {
	case "sphere":
		args, err := parseFloats(lineTokens[0], lineTokens[2:], 4)
		if err != nil {
			return err
		}
		if args[3] <= 0 {
			return fmt.Errorf("sphere radius must be positive; got %g", args[3])
		}
		obj.Kind = scene.SphereObject
		obj.Center = types.XYZ(args[0], args[1], args[2])
		obj.Radius = args[3]
	case "plane":
		args, err := parseFloats(lineTokens[0], lineTokens[2:], 6)
		if err != nil {
			return err
		}
		obj.Kind = scene.PlaneObject
		obj.Point = types.XYZ(args[0], args[1], args[2])
		obj.Normal = types.XYZ(args[3], args[4], args[5])
		if obj.Normal.LenSq() == 0 {
			return fmt.Errorf("plane normal must be non-zero")
		}
	case "box":
		args, err := parseFloats(lineTokens[0], lineTokens[2:], 6, 9)
		if err != nil {
			return err
		}
		obj.Kind = scene.BoxObject
		obj.Center = types.XYZ(args[0], args[1], args[2])
		obj.Size = types.XYZ(args[3], args[4], args[5])
		if obj.Size[0] <= 0 || obj.Size[1] <= 0 || obj.Size[2] <= 0 {
			return fmt.Errorf("box size must be positive; got %v", obj.Size)
		}
		if len(args) == 9 {
			obj.Rotation = types.XYZ(args[6], args[7], args[8])
		}
	}

	r.def.Objects = append(r.def.Objects, obj)
	return nil
}

// Parse directive arguments as floats. The number of arguments must match
// one of the accepted counts.
func parseFloats(directive string, args []string, accepted ...int) ([]float64, error) {
	valid := false
	for _, count := range accepted {
		if len(args) == count {
			valid = true
			break
		}
	}
	if !valid {
		expected := make([]string, len(accepted))
		for idx, count := range accepted {
			expected[idx] = strconv.Itoa(count)
		}
		return nil, fmt.Errorf(`unsupported syntax for "%s"; expected %s numeric arguments; got %d`, directive, strings.Join(expected, " or "), len(args))
	}

	out := make([]float64, len(args))
	for idx, token := range args {
		val, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, fmt.Errorf(`could not parse "%s" argument %q as a number`, directive, token)
		}
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil, fmt.Errorf(`"%s" argument %q is not a finite number`, directive, token)
		}
		out[idx] = val
	}
	return out, nil
}
