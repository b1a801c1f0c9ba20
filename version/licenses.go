/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package version

import "fmt"

// licenseName returns the display name GetLicenseName reports for lic.
func licenseName(lic License) string {
	switch lic {
	case License_MIT:
		return "MIT License"
	case License_GNU_GPL_v3:
		return "GNU GENERAL PUBLIC LICENSE Version 3"
	case License_GNU_Lesser_GPL_v3:
		return "GNU LESSER GENERAL PUBLIC LICENSE Version 3"
	case License_GNU_Affero_GPL_v3:
		return "GNU AFFERO GENERAL PUBLIC LICENSE Version 3"
	case License_Apache_v2:
		return "Apache License Version 2.0"
	case License_Mozilla_PL_v2:
		return "Mozilla Public License Version 2.0"
	case License_Unlicense:
		return "Free and unencumbered software"
	case License_Creative_Common_Zero_v1:
		return "Creative Commons CC0 1.0 Universal"
	case License_Creative_Common_Attribution_v4_int:
		return "Creative Commons Attribution 4.0 International"
	case License_Creative_Common_Attribution_Share_Alike_v4_int:
		return "Creative Commons Attribution-ShareAlike 4.0 International"
	case License_SIL_Open_Font_1_1:
		return "SIL OPEN FONT LICENSE Version 1.1"
	default:
		return "MIT License"
	}
}

// licenseLegal returns the full legal body of lic, with a copyright line
// filled in where the license text requires one.
func licenseLegal(lic License, year int, author string) string {
	switch lic {
	case License_MIT:
		return fmt.Sprintf(
			"MIT License\n\nCopyright (c) %d %s\n\n"+
				"Permission is hereby granted, free of charge, to any person obtaining a copy "+
				"of this software and associated documentation files (the \"Software\"), to deal "+
				"in the Software without restriction, including without limitation the rights "+
				"to use, copy, modify, merge, publish, distribute, sublicense, and/or sell "+
				"copies of the Software, and to permit persons to whom the Software is "+
				"furnished to do so, subject to the following conditions:\n\n"+
				"The above copyright notice and this permission notice shall be included in all "+
				"copies or substantial portions of the Software.\n\n"+
				"THE SOFTWARE IS PROVIDED \"AS IS\", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR "+
				"IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, "+
				"FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE "+
				"AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER "+
				"LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, "+
				"OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE "+
				"SOFTWARE.\n", year, author)
	case License_Apache_v2:
		return fmt.Sprintf(
			"Apache License\nVersion 2.0, January 2004\n\n"+
				"Copyright %d %s\n\n"+
				"Licensed under the Apache License, Version 2.0 (the \"License\"); "+
				"you may not use this file except in compliance with the License. "+
				"You may obtain a copy of the License at\n\n    http://www.apache.org/licenses/LICENSE-2.0\n\n"+
				"Unless required by applicable law or agreed to in writing, software "+
				"distributed under the License is distributed on an \"AS IS\" BASIS, "+
				"WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.\n", year, author)
	case License_GNU_GPL_v3:
		return fmt.Sprintf(
			"GNU GENERAL PUBLIC LICENSE\nVersion 3, 29 June 2007\n\n"+
				"Copyright (c) %d %s\n\n"+
				"This program is free software: you can redistribute it and/or modify "+
				"it under the terms of the GNU General Public License as published by "+
				"the Free Software Foundation, either version 3 of the License, or "+
				"(at your option) any later version.\n", year, author)
	case License_GNU_Lesser_GPL_v3:
		return fmt.Sprintf(
			"GNU LESSER GENERAL PUBLIC LICENSE\nVersion 3, 29 June 2007\n\n"+
				"Copyright (c) %d %s\n\n"+
				"This library is free software: you can redistribute it and/or modify "+
				"it under the terms of the GNU Lesser General Public License.\n", year, author)
	case License_GNU_Affero_GPL_v3:
		return fmt.Sprintf(
			"GNU AFFERO GENERAL PUBLIC LICENSE\nVersion 3, 19 November 2007\n\n"+
				"Copyright (c) %d %s\n\n"+
				"This program is free software: you can redistribute it and/or modify "+
				"it under the terms of the GNU Affero General Public License.\n", year, author)
	case License_Mozilla_PL_v2:
		return fmt.Sprintf(
			"Mozilla Public License Version 2.0\n\n"+
				"Copyright (c) %d %s\n\n"+
				"This Source Code Form is subject to the terms of the Mozilla Public "+
				"License, v. 2.0. If a copy of the MPL was not distributed with this "+
				"file, You can obtain one at http://mozilla.org/MPL/2.0/.\n", year, author)
	case License_Unlicense:
		return "This is free and unencumbered software released into the public domain.\n\n" +
			"Anyone is free to copy, modify, publish, use, compile, sell, or " +
			"distribute this software, either in source code form or as a compiled " +
			"binary, for any purpose, commercial or non-commercial, and by any means.\n"
	case License_Creative_Common_Zero_v1:
		return "Creative Commons CC0 1.0 Universal\n\n" +
			"The person who associated a work with this deed has dedicated the work " +
			"to the public domain by waiving all of his or her rights to the work " +
			"worldwide under copyright law.\n"
	case License_Creative_Common_Attribution_v4_int:
		return fmt.Sprintf(
			"Creative Commons Attribution 4.0 International\n\n"+
				"Copyright (c) %d %s\n\n"+
				"You are free to share and adapt this material for any purpose, "+
				"provided you give appropriate credit.\n", year, author)
	case License_Creative_Common_Attribution_Share_Alike_v4_int:
		return fmt.Sprintf(
			"Creative Commons Attribution-ShareAlike 4.0 International\n\n"+
				"Copyright (c) %d %s\n\n"+
				"You are free to share and adapt this material, provided you give "+
				"appropriate credit and distribute derivatives under the same license "+
				"(Share Alike).\n", year, author)
	case License_SIL_Open_Font_1_1:
		return fmt.Sprintf(
			"SIL OPEN FONT LICENSE\nVersion 1.1 - 26 February 2007\n\n"+
				"Copyright (c) %d %s\n\n"+
				"Permission is hereby granted, free of charge, to any person obtaining "+
				"a copy of the fonts accompanying this license to use, study, copy, "+
				"merge, embed, modify, redistribute, and sell modified and unmodified "+
				"copies of the font, subject to the conditions of the SIL Open Font License.\n", year, author)
	default:
		return licenseLegal(License_MIT, year, author)
	}
}

// licenseBoiler returns the short copyright notice stamped atop a source
// file for lic. For permissive short-form licenses (MIT, Apache, Mozilla,
// GPL family) this is a condensed notice; for the public-domain-style
// licenses (Unlicense, CC0) there is no separate copyright line to add, so
// the boilerplate is the license's own short text.
func licenseBoiler(lic License, year int, author string) string {
	switch lic {
	case License_Unlicense:
		return "This is free and unencumbered software released into the public domain.\n"
	case License_Creative_Common_Zero_v1:
		return "Creative Commons CC0 1.0 Universal - public domain dedication.\n"
	default:
		return fmt.Sprintf("Copyright (c) %d %s\nLicensed under the %s.\n", year, author, licenseName(lic))
	}
}
