package badge

// verdanaWidths holds Verdana advance widths at 11px, grouped into runs of
// consecutive code points that share a width.
var verdanaWidths = []GlyphWidth{
	{0x0020, 0x0020, 3.8671875},
	{0x0021, 0x0021, 4.3291015625},
	{0x0022, 0x0022, 5.048828125},
	{0x0023, 0x0023, 9.001953125},
	{0x0024, 0x0024, 6.9931640625},
	{0x0025, 0x0025, 11.837890625},
	{0x0026, 0x0026, 7.9921875},
	{0x0027, 0x0027, 2.9541015625},
	{0x0028, 0x0029, 4.88232421875},
	{0x002a, 0x002a, 6.9931640625},
	{0x002b, 0x002b, 9.001953125},
	{0x002c, 0x002c, 4.00146484375},
	{0x002d, 0x002d, 4.88232421875},
	{0x002e, 0x002e, 4.00146484375},
	{0x002f, 0x002f, 4.88232421875},
	{0x0030, 0x0039, 6.9931640625},
	{0x003a, 0x003b, 4.88232421875},
	{0x003c, 0x003e, 9.001953125},
	{0x003f, 0x003f, 5.99951171875},
	{0x0040, 0x0040, 11.0},
	{0x0041, 0x0041, 7.52490234375},
	{0x0042, 0x0042, 7.54638671875},
	{0x0043, 0x0043, 7.6806640625},
	{0x0044, 0x0044, 8.47021484375},
	{0x0045, 0x0045, 6.9501953125},
	{0x0046, 0x0046, 6.3271484375},
	{0x0047, 0x0047, 8.52392578125},
	{0x0048, 0x0048, 8.271484375},
	{0x0049, 0x0049, 4.619140625},
	{0x004a, 0x004a, 4.94677734375},
	{0x004b, 0x004b, 7.60009765625},
	{0x004c, 0x004c, 6.14990234375},
	{0x004d, 0x004d, 9.2490234375},
	{0x004e, 0x004e, 8.228515625},
	{0x004f, 0x004f, 8.658203125},
	{0x0050, 0x0050, 6.63330078125},
	{0x0051, 0x0051, 8.658203125},
	{0x0052, 0x0052, 7.64306640625},
	{0x0053, 0x0053, 7.52490234375},
	{0x0054, 0x0054, 6.64404296875},
	{0x0055, 0x0055, 8.05126953125},
	{0x0056, 0x0056, 7.52490234375},
	{0x0057, 0x0057, 10.87646484375},
	{0x0058, 0x0058, 7.53564453125},
	{0x0059, 0x0059, 6.69775390625},
	{0x005a, 0x005a, 7.54638671875},
	{0x005b, 0x005d, 4.88232421875},
	{0x005e, 0x005e, 9.001953125},
	{0x005f, 0x0060, 6.9931640625},
	{0x0061, 0x0061, 6.60107421875},
	{0x0062, 0x0062, 6.8212890625},
	{0x0063, 0x0063, 5.70947265625},
	{0x0064, 0x0064, 6.8212890625},
	{0x0065, 0x0065, 6.509765625},
	{0x0066, 0x0066, 3.84033203125},
	{0x0067, 0x0067, 6.8212890625},
	{0x0068, 0x0068, 6.94482421875},
	{0x0069, 0x0069, 2.9541015625},
	{0x006a, 0x006a, 3.630859375},
	{0x006b, 0x006b, 6.48828125},
	{0x006c, 0x006c, 2.9541015625},
	{0x006d, 0x006d, 10.6669921875},
	{0x006e, 0x006e, 6.94482421875},
	{0x006f, 0x006f, 6.56884765625},
	{0x0070, 0x0071, 6.8212890625},
	{0x0072, 0x0072, 4.6943359375},
	{0x0073, 0x0073, 5.71484375},
	{0x0074, 0x0074, 4.24853515625},
	{0x0075, 0x0075, 6.94482421875},
	{0x0076, 0x0076, 6.48828125},
	{0x0077, 0x0077, 8.94287109375},
	{0x0078, 0x0079, 6.48828125},
	{0x007a, 0x007a, 5.70947265625},
	{0x007b, 0x007b, 6.982421875},
	{0x007c, 0x007c, 4.88232421875},
	{0x007d, 0x007d, 6.982421875},
	{0x007e, 0x007e, 9.001953125},
	{0x00a0, 0x00a0, 3.8671875},
	{0x00a1, 0x00a1, 4.3291015625},
	{0x00a2, 0x00a5, 6.9931640625},
	{0x00a6, 0x00a6, 4.88232421875},
	{0x00a7, 0x00a8, 6.9931640625},
	{0x00a9, 0x00a9, 11.0},
	{0x00aa, 0x00aa, 5.99951171875},
	{0x00ab, 0x00ab, 7.99755859375},
	{0x00ac, 0x00ac, 9.001953125},
	{0x00ad, 0x00ad, 4.88232421875},
	{0x00ae, 0x00ae, 11.0},
	{0x00af, 0x00af, 6.9931640625},
	{0x00b0, 0x00b0, 5.97265625},
	{0x00b1, 0x00b1, 9.001953125},
	{0x00b2, 0x00b3, 5.99951171875},
	{0x00b4, 0x00b4, 6.9931640625},
	{0x00b5, 0x00b5, 7.0791015625},
	{0x00b6, 0x00b6, 6.9931640625},
	{0x00b7, 0x00b7, 4.00146484375},
	{0x00b8, 0x00b8, 6.9931640625},
	{0x00b9, 0x00b9, 5.99951171875},
	{0x00ba, 0x00ba, 5.91357421875},
	{0x00bb, 0x00bb, 7.99755859375},
	{0x00bc, 0x00be, 11.6123046875},
	{0x00bf, 0x00bf, 5.99951171875},
	{0x00c0, 0x00c5, 7.52490234375},
	{0x00c6, 0x00c6, 11.57470703125},
	{0x00c7, 0x00c7, 7.6806640625},
	{0x00c8, 0x00cb, 6.9501953125},
	{0x00cc, 0x00cf, 4.619140625},
	{0x00d0, 0x00d0, 8.47021484375},
	{0x00d1, 0x00d1, 8.228515625},
	{0x00d2, 0x00d6, 8.658203125},
	{0x00d7, 0x00d7, 9.001953125},
	{0x00d8, 0x00d8, 8.658203125},
	{0x00d9, 0x00dc, 8.05126953125},
	{0x00dd, 0x00dd, 6.69775390625},
	{0x00de, 0x00de, 6.6708984375},
	{0x00df, 0x00df, 6.79443359375},
	{0x00e0, 0x00e5, 6.60107421875},
	{0x00e6, 0x00e6, 10.25341796875},
	{0x00e7, 0x00e7, 5.70947265625},
	{0x00e8, 0x00eb, 6.509765625},
	{0x00ec, 0x00ef, 2.9541015625},
	{0x00f0, 0x00f0, 6.56884765625},
	{0x00f1, 0x00f1, 6.94482421875},
	{0x00f2, 0x00f6, 6.56884765625},
	{0x00f7, 0x00f7, 9.001953125},
	{0x00f8, 0x00f8, 6.56884765625},
	{0x00f9, 0x00fc, 6.94482421875},
	{0x00fd, 0x00fd, 6.48828125},
	{0x00fe, 0x00fe, 6.8212890625},
	{0x00ff, 0x00ff, 6.48828125},
	{0x2013, 0x2013, 6.9931640625},
	{0x2014, 0x2014, 11.0},
	{0x2018, 0x201a, 2.9541015625},
	{0x201c, 0x201e, 5.048828125},
	{0x2020, 0x2021, 6.9931640625},
	{0x2022, 0x2022, 5.9619140625},
	{0x2026, 0x2026, 10.42529296875},
	{0x2030, 0x2030, 16.82763671875},
	{0x2039, 0x203a, 4.88232421875},
	{0x20ac, 0x20ac, 6.9931640625},
	{0x2122, 0x2122, 11.0},
}
