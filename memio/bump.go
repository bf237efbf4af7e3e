package memio

import (
	"sync"

	"github.com/wippyai/tuple/errors"
	"go.uber.org/zap"
)

// BumpAllocator hands out aligned blocks from [base, limit). Free is a
// no-op; Reset reclaims everything.
type BumpAllocator struct {
	mu    sync.Mutex
	base  uint32
	limit uint32
	next  uint32
}

// NewBumpAllocator returns an allocator over [base, limit).
func NewBumpAllocator(base, limit uint32) *BumpAllocator {
	return &BumpAllocator{base: base, limit: limit, next: base}
}

// Alloc reserves size bytes at the next multiple of align.
func (b *BumpAllocator) Alloc(size, align uint32) (uint32, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ptr := uint64(b.next)
	if align > 1 {
		ptr = (ptr + uint64(align) - 1) / uint64(align) * uint64(align)
	}
	if ptr+uint64(size) > uint64(b.limit) {
		return 0, errors.AllocationFailed(errors.PhaseMemory, size, align)
	}
	b.next = uint32(ptr) + size
	return uint32(ptr), nil
}

// Free does nothing.
func (b *BumpAllocator) Free(ptr, size, align uint32) {}

// Used returns the number of bytes consumed, padding included.
func (b *BumpAllocator) Used() uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.next - b.base
}

// Reset releases every block.
func (b *BumpAllocator) Reset() {
	b.mu.Lock()
	b.next = b.base
	b.mu.Unlock()
}

// StoreNew allocates room for r and stores it there.
func StoreNew(mem Memory, alloc Allocator, r Record) (uint32, error) {
	d := r.Layout()
	ptr, err := alloc.Alloc(d.Size, d.Align)
	if err != nil {
		return 0, err
	}
	if err := Store(mem, ptr, r); err != nil {
		alloc.Free(ptr, d.Size, d.Align)
		return 0, err
	}
	return ptr, nil
}

// StoreSlice allocates a contiguous array and stores rs into it, element i
// at ptr + i*Size. It returns the address of the first element.
func StoreSlice[R Record](mem Memory, alloc Allocator, rs []R) (uint32, error) {
	if len(rs) == 0 {
		return 0, errors.InvalidInput(errors.PhaseMemory, nil, "empty slice")
	}
	d := rs[0].Layout()
	total := uint64(d.Size) * uint64(len(rs))
	if total > uint64(^uint32(0)) {
		return 0, errors.Overflow(errors.PhaseMemory, nil, total, "u32")
	}
	ptr, err := alloc.Alloc(uint32(total), d.Align)
	if err != nil {
		return 0, err
	}
	for i, r := range rs {
		if err := Store(mem, ptr+uint32(i)*d.Size, r); err != nil {
			alloc.Free(ptr, uint32(total), d.Align)
			return 0, err
		}
	}
	Logger().Debug("stored record array",
		zap.Uint32("ptr", ptr),
		zap.Int("count", len(rs)),
		zap.Uint32("stride", d.Size))
	return ptr, nil
}
