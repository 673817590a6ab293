package x11

import (
	"github.com/BurntSushi/xgb/randr"
	"github.com/fensterchef/fensterchef-sub000/internal/geometry"
	"github.com/fensterchef/fensterchef-sub000/internal/monitor"
)

// QueryOutputs asks RandR for every connected output's name and rectangle
// (spec §4.B "Query outputs"), the raw material internal/monitor.BuildSet
// absorbs into a Set. Grounded on the query-outputs idiom xgbutil's
// xinerama package uses for the older extension (get screen resources,
// then get-info per id), adapted to RandR's CRTC/output split.
func (d *Display) QueryOutputs() ([]monitor.Output, error) {
	resources, err := randr.GetScreenResources(d.Conn, d.Root).Reply()
	if err != nil {
		return nil, err
	}

	var outputs []monitor.Output
	for _, id := range resources.Outputs {
		info, err := randr.GetOutputInfo(d.Conn, id, 0).Reply()
		if err != nil || info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}
		crtc, err := randr.GetCrtcInfo(d.Conn, info.Crtc, 0).Reply()
		if err != nil {
			continue
		}
		outputs = append(outputs, monitor.Output{
			Name: string(info.Name),
			Rect: geometry.Rectangle{
				X: int32(crtc.X), Y: int32(crtc.Y),
				Width: uint32(crtc.Width), Height: uint32(crtc.Height),
			},
			IsPrimary: false,
		})
	}

	if primary, err := randr.GetOutputPrimary(d.Conn, d.Root).Reply(); err == nil {
		for i := range outputs {
			if info, err := randr.GetOutputInfo(d.Conn, primary.Output, 0).Reply(); err == nil && outputs[i].Name == string(info.Name) {
				outputs[i].IsPrimary = true
			}
		}
	}

	return outputs, nil
}
