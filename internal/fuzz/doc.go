// Package fuzztests houses Go fuzz harnesses for the literal decoder and
// the driver built on it. They guard against panics and against the file
// and stream paths disagreeing on arbitrary input.
//
// Назначение: прогонять произвольные байты через strlit, DecodeSource и Stream.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/strlit, internal/driver, internal/source, internal/testkit.

package fuzztests
