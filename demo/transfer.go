package demo

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/movable-go/movable/log"
	"github.com/movable-go/movable/owned"
)

// Demo resource contents. The scalar is arbitrary; the sequence is small
// but stands in for data that is expensive to duplicate.
var demoSequence = []string{"ada", "turing"} //nolint:gochecknoglobals

const demoScalar = 15445

// TransferReport describes one ownership-transfer walkthrough run.
//
// Ownership travels source -> assigned -> constructed; only the last
// holder ends up valid.
type TransferReport struct {
	// Scalar is the scalar carried through both transfers.
	Scalar uint32 `json:"scalar"`
	// Sequence is the annexed sequence as held by the final owner.
	Sequence []string `json:"sequence"`

	// SourceValid is the validity of the original resource.
	SourceValid bool `json:"sourceValid"`
	// AssignedValid is the validity of the move-assignment target.
	AssignedValid bool `json:"assignedValid"`
	// ConstructedValid is the validity of the move-constructed resource.
	ConstructedValid bool `json:"constructedValid"`

	// AnnexedSize is the payload size carried by the transfers.
	AnnexedSize string `json:"annexedSize"`

	// Taken is a bare slice seized from its handle and extended by the
	// new owner.
	Taken []int `json:"taken"`
	// HandleEmptied reports that the seized handle no longer reaches
	// the elements.
	HandleEmptied bool `json:"handleEmptied"`
}

// Transfer walks a resource through both transfer forms: construction with
// an annexed sequence, move assignment into an existing resource, and move
// construction from it. It then seizes a bare slice handle the same way.
func Transfer() TransferReport {
	lg := log.New("demo:transfer")
	started := time.Now()

	seq := make([]string, len(demoSequence))
	copy(seq, demoSequence)

	size := 0
	for _, s := range seq {
		size += len(s)
	}

	source := owned.NewWith(demoScalar, &seq)

	assigned := owned.New[string]()
	assigned.MoveAssign(source)

	constructed := owned.MoveFrom(assigned)

	held := make([]string, 0, constructed.Len())
	for i := range constructed.Len() {
		held = append(held, *constructed.At(i))
	}

	ints := []int{1, 2, 3, 4}
	taken := owned.Annex(&ints)
	taken = append(taken, 3)

	lg.With(log.Scalar(constructed.Scalar()), log.Elapsed(time.Since(started))).
		Debugf("Transferred %s across two moves", humanize.Bytes(uint64(size)))

	return TransferReport{
		Scalar:   constructed.Scalar(),
		Sequence: held,

		SourceValid:      source.IsValid(),
		AssignedValid:    assigned.IsValid(),
		ConstructedValid: constructed.IsValid(),

		AnnexedSize: humanize.Bytes(uint64(size)),

		Taken:         taken,
		HandleEmptied: len(ints) == 0,
	}
}
