// Package constants provides program and calling-convention constant definitions.
package constants

// GreetingProgramID 内置greeting程序的标识符（Base58）
//
// 程序标识符在声明时固定，编译进制品，整个部署生命周期内不变。
// 运行时只读，外部调用方用它寻址本程序。
const GreetingProgramID = "GhcmnSh5q2ZSpBCD6bkNKLXarKghCGg6QDVjk4wQbiav"

// GreetingProgramName greeting程序的可读名称
const GreetingProgramName = "greeting"
