package simulation

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lao-tseu-is-alive/go-boid-steering/pb"
	"google.golang.org/protobuf/encoding/protojson"
)

// Recorder writes snapshots as newline-delimited protojson, one snapshot per line.
type Recorder struct {
	w       *bufio.Writer
	opts    protojson.MarshalOptions
	written int
}

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{
		w:    bufio.NewWriter(w),
		opts: protojson.MarshalOptions{UseProtoNames: true},
	}
}

// Record appends one snapshot. It matches the onSnapshot signature of Runner.Run.
func (r *Recorder) Record(snapshot *pb.Snapshot) error {
	b, err := r.opts.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %d: %w", snapshot.GetTick(), err)
	}
	if _, err := r.w.Write(b); err != nil {
		return fmt.Errorf("failed to write snapshot %d: %w", snapshot.GetTick(), err)
	}
	if err := r.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write snapshot %d: %w", snapshot.GetTick(), err)
	}
	r.written++
	return nil
}

// Written returns how many snapshots were recorded.
func (r *Recorder) Written() int {
	return r.written
}

func (r *Recorder) Flush() error {
	return r.w.Flush()
}

// ReadSnapshots parses a recording made by Recorder.
func ReadSnapshots(rd io.Reader) ([]*pb.Snapshot, error) {
	var snapshots []*pb.Snapshot
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		snapshot := &pb.Snapshot{}
		if err := protojson.Unmarshal(scanner.Bytes(), snapshot); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recording: %w", err)
	}
	return snapshots, nil
}
