package galaxy

var DrawOrnament = drawOrnament
