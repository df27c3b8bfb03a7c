// Package ebitenhal implements indev.HAL on top of ebiten, the reference
// pointer backend: a mouse-driven MouseHAL and a slot-stable multi-touch
// TouchTracker whose Slot method hands out one HAL per touch slot, grounded on the teacher's Scene.processMousePointer and
// Scene.processTouchPointers.
package ebitenhal
