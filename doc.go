// Package starfield is an ambient animated background: a field of twinkling
// stars with depth parallax, pointer repulsion and scroll motion blur, plus a
// few shooting stars crossing the view.
//
// The component takes no configuration. It is mounted on a [Host], which
// supplies the window (size, scroll offset, event listeners), a
// requestAnimationFrame-style [Scheduler] and a drawing [Surface].
//
// # Quick start
//
// The simplest way to see it is [Run], which opens an Ebitengine window:
//
//	if err := starfield.Run(starfield.RunConfig{Title: "Stars"}); err != nil {
//		log.Fatal(err)
//	}
//
// To layer it behind your own content, mount it on any host:
//
//	sf := starfield.New()
//	if err := sf.Mount(host); err != nil {
//		return err
//	}
//	defer sf.Unmount()
//
// # Hosts
//
// [EbitenHost] renders into an offscreen [ImageSurface] and turns the cursor,
// wheel and paging keys into window events. [Headless] has no display and
// advances frames only when asked, which makes it the harness for tests and
// scripted input ([LoadScript]). The term subpackage hosts the field in a
// terminal through tcell.
//
// # Frame order
//
// Every frame the component decays the scroll velocity, paints the opaque
// backdrop, then updates and draws each static star followed by each
// shooting star. Window listeners only record input; a resize marks the
// field for reseeding, and both collections are rebuilt at the start of the
// next frame.
//
// # Lifecycle
//
// Mount starts the frame loop and a short fade-in. Unmount removes every
// listener, cancels the pending frame and releases the surface. If the host
// has no drawing surface, Mount leaves the component inert and returns nil.
//
// # Debugging
//
// [Starfield.SetDebugMode] logs per-second frame statistics through
// log/slog; route them with [SetLogger]. [EbitenHost.Screenshot] (F12 in a
// window) saves the rendered frame as a PNG.
package starfield
