package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	assetscene "github.com/achilleasa/polaris-cpu/asset/scene"
	"github.com/achilleasa/polaris-cpu/asset/scene/reader"
	"github.com/achilleasa/polaris-cpu/asset/scene/writer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Compile text scenes to the binary zip format.
func CompileScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() == 0 {
		return errors.New("missing scene file argument")
	}

	for idx := 0; idx < ctx.NArg(); idx++ {
		sceneFile := ctx.Args().Get(idx)
		ext := filepath.Ext(sceneFile)
		if ext != ".scene" && ext != ".txt" {
			logger.Warningf("skipping unsupported file %s", sceneFile)
			continue
		}

		logger.Noticef("parsing and compiling scene: %s", sceneFile)
		def, err := reader.ReadScene(sceneFile)
		if err != nil {
			return err
		}

		// Make sure the scene can actually be built before compiling it
		if _, _, err = def.Build(1); err != nil {
			return err
		}
		logger.Infof("scene information:\n%s", sceneInfoTable(def))

		zipFile := strings.TrimSuffix(sceneFile, ext) + ".zip"
		if err = writer.WriteScene(def, zipFile); err != nil {
			return err
		}
	}

	return nil
}

// Write the built-in scene to a compiled zip file.
func ExportDefaultScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 || filepath.Ext(ctx.Args().First()) != ".zip" {
		return errors.New("expected a single output file argument with a .zip extension")
	}

	return writer.WriteScene(assetscene.Default(), ctx.Args().First())
}

// Display scene info.
func ShowSceneInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	def, err := loadScene(ctx)
	if err != nil {
		return err
	}

	logger.Noticef("scene information:\n%s", sceneInfoTable(def))
	return nil
}

func sceneInfoTable(def *assetscene.Definition) string {
	var buf bytes.Buffer

	cam := def.Camera
	fov := cam.FOV
	if fov <= 0 {
		fov = assetscene.DefaultFOV
	}
	sky := def.SkyGradient()
	fmt.Fprintf(&buf, "camera: position %s, rotation %s, fov %g\n", cam.Position, cam.Rotation, fov)
	fmt.Fprintf(&buf, "sky: horizon %s, zenith %s\n\n", sky.Horizon, sky.Zenith)

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Material", "Color", "Smoothness", "Emission", "Objects"})
	for _, mat := range def.Materials {
		useCount := 0
		for _, obj := range def.Objects {
			if obj.Material == mat.Name {
				useCount++
			}
		}

		emission := "-"
		if mat.EmissionStrength > 0 {
			emission = fmt.Sprintf("%s x %g", mat.EmissionColor, mat.EmissionStrength)
		}
		table.Append([]string{
			mat.Name,
			mat.Color.String(),
			fmt.Sprintf("%g", mat.Smoothness),
			emission,
			fmt.Sprintf("%d", useCount),
		})
	}
	table.Render()
	buf.WriteString("\n")

	table = tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Type", "Material", "Parameters"})
	for idx, obj := range def.Objects {
		table.Append([]string{
			fmt.Sprintf("%d", idx),
			obj.Kind.String(),
			obj.Material,
			objectParams(obj),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%d", len(def.Objects))})
	table.Render()

	return buf.String()
}

func objectParams(obj assetscene.ObjectDef) string {
	switch obj.Kind {
	case assetscene.SphereObject:
		return fmt.Sprintf("center %s, radius %g", obj.Center, obj.Radius)
	case assetscene.PlaneObject:
		return fmt.Sprintf("point %s, normal %s", obj.Point, obj.Normal)
	case assetscene.BoxObject:
		return fmt.Sprintf("center %s, size %s, rotation %s", obj.Center, obj.Size, obj.Rotation)
	}
	return ""
}
