package vrctl

import (
	"fmt"
	"io"
	"text/tabwriter"

	"vrhal/pkg/types"
)

// renderStatus prints the daemon snapshot in a human-readable block.
func renderStatus(w io.Writer, st types.StatusResponse) {
	fmt.Fprintf(w, "state:         %s\n", st.State)
	fmt.Fprintf(w, "frames:        %d\n", st.Frames)
	fmt.Fprintf(w, "wait failures: %d\n", st.WaitFailures)
	fmt.Fprintf(w, "render target: %dx%d per eye\n", st.TargetWidth, st.TargetHeight)
	fmt.Fprintf(w, "uptime:        %ds\n", st.UptimeSeconds)
	fmt.Fprintf(w, "trackers:      %d\n", len(st.Trackers))
}

// renderTrackers prints the tracker table.
func renderTrackers(w io.Writer, trackers []types.TrackerStatus) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tVALID\tCAMERA\tPARTS\tMODEL\tPOSITION")
	for _, tr := range trackers {
		fmt.Fprintf(tw, "%d\t%v\t%v\t%d\t%s\t(%.2f, %.2f, %.2f)\n",
			tr.Slot, tr.Valid, tr.IsCamera, tr.Components, tr.ModelState,
			tr.Position[0], tr.Position[1], tr.Position[2])
	}
	_ = tw.Flush()
}
