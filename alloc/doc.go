// Package alloc provides the allocator capability used by the zeno reader.
//
// # Overview
//
// An Allocator hands out raw zeroed memory and declares, through Caps, which
// of the four operations it implements: Alloc, Resize, Free and FreeAll.
// Calling an operation an allocator does not implement is fatal: the call
// panics with a *FatalError wrapping ErrUnsupported. Allocators are plain
// values passed to every operation that allocates; nothing is global.
//
// Implementations:
//
//   - System: the Go heap. Alloc, Resize and Free.
//   - Pages: anonymous memory mappings outside the Go heap. Alloc, Resize
//     and Free.
//   - Arena: a bump allocator over one buffer from a backing allocator.
//     Alloc and FreeAll; Free is a no-op and Resize is fatal.
//   - Locked: a mutex around any of the above.
//
// # Basic Usage
//
//	scratch := alloc.NewArena(alloc.NewSystem())
//	defer scratch.Release()
//
//	stack := alloc.NewArray[int32](scratch)
//	stack.Push(1)
//	stack.Push(2)
//	top := stack.Pop()
//
//	// Rewind the arena (O(1)); stack must not be used afterwards.
//	scratch.FreeAll()
//
// # Arena growth
//
// The arena reserves its initial capacity (DefaultArenaSize) up front and,
// whenever an allocation does not fit, takes a buffer of twice the size from
// the backing allocator and copies the used prefix across. The old buffer is
// retired rather than freed, so earlier slices stay valid on any backing,
// Pages included. FreeAll frees retired buffers and rewinds to offset zero
// without returning the current one, so the capacity of an arena never
// decreases until Release.
//
// # Pointer-free memory
//
// Memory from an Allocator is invisible to the garbage collector when it
// comes from Pages, and is typed as bytes when it comes from System or an
// Arena. Typed views (New, MakeSlice, Array) therefore refuse element types
// that contain Go pointers, strings, slices, maps or interfaces.
//
// # Important Notes
//
//   - Arena memory is only valid until the next FreeAll or Release
//   - Arena is not goroutine-safe; the Allocator contract does not promise
//     goroutine safety either, so share an instance through Locked
//   - Arena offsets are unaligned; New, MakeSlice and Array align themselves
package alloc
